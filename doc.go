// Package kujira is a software-rendered 2D tile-world engine for [Ebitengine].
//
// Kujira walks a sparse tile grid, scrolls a double-buffered camera across it
// in smooth tile-sized increments, and composites a transformable sprite plus
// expanding ripple effects onto a raw pixel buffer every tick. All rendering
// is per-pixel CPU arithmetic; Ebitengine is used only as the window, input,
// and present collaborator.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	world := kujira.NewWorld(kujira.WorldConfig{Seed: 7})
//	kujira.Run(world, kujira.RunConfig{Title: "Kujira"})
//
// For full control, or for headless use, step the world yourself and present
// [World.Frame] however you like:
//
//	world := kujira.NewWorld(kujira.WorldConfig{})
//	for world.Running {
//		world.Step(nextInput(), kujira.TickDuration)
//		present(world.Frame)
//	}
//
// # Pieces
//
// [Buffer] owns packed RGBA pixels and the single [BlendPixel] compositing
// primitive. [Scale], [Rotate], and [VFlip] are the pure image transforms;
// [DrawSprite] chains them into the stylized sprite composite. [TileIndex]
// is the walkable-tile set generated by a biased random walk and queried by
// binary search. [Camera] pre-renders the next visible tile region while
// still displaying the previous one. [RippleRing] is the fixed five-slot
// pool of expanding ring effects. [World] ties them together and advances
// one tick per [World.Step].
//
// Input can come from the keyboard (via [Run]) or from a JSON script (via
// [LoadScript] and [ScriptRunner]) for deterministic headless runs.
//
// [Ebitengine]: https://ebitengine.org
package kujira
