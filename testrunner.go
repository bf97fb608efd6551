package fotoprint

import (
	"context"
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Color  string  `json:"color,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// script is the top-level JSON structure.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays an editing session one step per frame. Pointer steps
// go through the injected-input queue; the rest call the editor directly.
// Attach it with Input.SetScriptRunner.
//
// Actions: click, dblclick, drag, palette (x, y relative to the panel),
// color, background, scale (slider value), remove, text, export (label),
// and wait (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
	exported  []string
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "click", "dblclick", "drag", "palette", "scale", "remove", "export", "wait":
		return nil
	case "color", "background":
		_, err := ParseColor(st.Color)
		return err
	case "text":
		if st.Text == "" {
			return fmt.Errorf("text step needs text")
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// SetScriptRunner attaches a runner. Input.Update advances it each frame.
func (in *Input) SetScriptRunner(r *ScriptRunner) {
	in.runner = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool { return r.done }

// Errors returns the errors steps produced, in order.
func (r *ScriptRunner) Errors() []error { return r.errs }

// Exported returns the files written by export steps.
func (r *ScriptRunner) Exported() []string { return r.exported }

// step advances the runner by one frame.
func (r *ScriptRunner) step(in *Input) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(in.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	ed := in.ed

	var err error
	switch st.Action {
	case "click":
		in.InjectClick(st.X, st.Y)
	case "dblclick":
		in.InjectDoubleClick(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "palette":
		in.InjectClick(in.paletteX+st.X, st.Y)
	case "color":
		err = ed.UpdateColor(MustParseColor(st.Color))
	case "background":
		ed.SetBackground(MustParseColor(st.Color))
	case "scale":
		err = ed.SetScaleFromSlider(st.Value)
	case "remove":
		err = ed.RemoveTop()
	case "text":
		_, err = ed.InsertText(st.Text)
	case "export":
		var path string
		path, err = ed.WriteLabeledPNG(context.Background(), ed.Config().ExportDir, st.Label)
		if err == nil {
			r.exported = append(r.exported, path)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		err = fmt.Errorf("step %d (%s): %w", r.cursor-1, st.Action, err)
		Logger().Warn("script step failed", "error", err)
		r.errs = append(r.errs, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(in.injectQueue) == 0 {
		r.done = true
	}
}
