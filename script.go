package kujira

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one timed action in an input script.
type scriptStep struct {
	Action string `json:"action"` // "hold", "press", "wait", "quit"
	Key    string `json:"key,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script one tick at a time, producing the
// Input sample the platform layer would otherwise poll from the keyboard.
// Used for headless runs and automated scenarios.
type ScriptRunner struct {
	steps   []scriptStep
	cursor  int
	remain  int
	current Input
	pressed bool
	done    bool
}

// LoadScript parses a JSON input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s inputScript
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("kujira: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("kujira: parse script: no steps")
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has been consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Next returns the input sample for the next tick. Past the end of the
// script it returns the zero Input forever.
func (r *ScriptRunner) Next() Input {
	if r.remain == 0 && !r.advance() {
		return Input{}
	}
	in := r.current
	r.remain--
	if r.pressed {
		// A press holds its key for a single frame, then releases for the
		// remainder of the step.
		r.current = Input{}
		r.pressed = false
	}
	return in
}

// advance loads the next step. Returns false once the script is exhausted.
func (r *ScriptRunner) advance() bool {
	if r.cursor >= len(r.steps) {
		r.done = true
		return false
	}
	st := r.steps[r.cursor]
	r.cursor++
	frames := st.Frames
	if frames <= 0 {
		frames = 1
	}
	r.remain = frames
	switch st.Action {
	case "wait":
		r.current = Input{}
	case "quit":
		r.current = Input{Quit: true}
	case "press":
		r.current = keyInput(st.Key)
		r.pressed = true
	default: // "hold"
		r.current = keyInput(st.Key)
	}
	return true
}

// keyInput maps a script key name to its input flag.
func keyInput(key string) Input {
	var in Input
	switch key {
	case "up":
		in.Up = true
	case "down":
		in.Down = true
	case "left":
		in.Left = true
	case "right":
		in.Right = true
	case "z", "shrink":
		in.ScaleDown = true
	case "x", "grow":
		in.ScaleUp = true
	case "r", "ripple":
		in.Ripple = true
	case "q", "quit":
		in.Quit = true
	}
	return in
}
