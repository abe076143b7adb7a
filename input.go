package kujira

// Input is the keyboard sample delivered to the world once per tick: four
// directional flags, the two scale-test keys, quit, and the manual ripple
// trigger. Edge detection against the previous tick's sample happens inside
// World.Step.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// ScaleDown and ScaleUp adjust the player sprite scale while idle.
	ScaleDown bool
	ScaleUp   bool

	// Quit stops the world on the next Step.
	Quit bool

	// Ripple spawns a ripple at a fixed test tile on its rising edge.
	Ripple bool
}
