package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/phanxgames/scenegraph"
)

// ErrNoExporter is returned by an export step when the runner has no Export
// hook.
var ErrNoExporter = errors.New("editor: export step without exporter")

// Step is a single action in an edit script.
type Step struct {
	Action  string     `json:"action"`
	Node    string     `json:"node,omitempty"`    // select
	Param   string     `json:"param,omitempty"`   // set
	Value   float64    `json:"value,omitempty"`   // set
	Seconds float64    `json:"seconds,omitempty"` // set, eased when > 0
	Kind    string     `json:"kind,omitempty"`    // add: translate, rotate or scale
	Color   [3]float64 `json:"color"`             // color, RGB in [0, 1]
	Frames  int        `json:"frames,omitempty"`  // wait
	Label   string     `json:"label,omitempty"`   // export
}

// Script is the top-level JSON structure of an edit script.
type Script struct {
	Steps []Step `json:"steps"`
}

// Runner plays a script against an Editor, one step per frame, for automated
// checks of the editing path.
type Runner struct {
	// Export, when set, handles export steps. The label names the output.
	Export func(label string) error

	steps     []Step
	params    []Param // parsed Param per step, zero when unused
	cursor    int
	waitCount int
	done      bool
}

var stepActions = map[string]bool{
	"select": true,
	"set":    true,
	"add":    true,
	"square": true,
	"color":  true,
	"undo":   true,
	"wait":   true,
	"export": true,
}

// LoadScript parses a JSON edit script. Unknown actions and parameter names
// are rejected here rather than halfway through a run.
func LoadScript(data []byte) (*Runner, error) {
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse edit script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse edit script: no steps")
	}
	r := &Runner{steps: script.Steps, params: make([]Param, len(script.Steps))}
	for i, st := range script.Steps {
		if !stepActions[st.Action] {
			return nil, fmt.Errorf("parse edit script: step %d: unknown action %q", i, st.Action)
		}
		switch st.Action {
		case "set":
			p, err := ParseParam(st.Param)
			if err != nil {
				return nil, fmt.Errorf("parse edit script: step %d: %w", i, err)
			}
			r.params[i] = p
		case "add":
			if _, err := parseKind(st.Kind); err != nil {
				return nil, fmt.Errorf("parse edit script: step %d: %w", i, err)
			}
		}
	}
	return r, nil
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.done
}

// Remaining returns the number of steps not yet run.
func (r *Runner) Remaining() int {
	return len(r.steps) - r.cursor
}

// Step runs at most one step against e. Call it once per frame from the
// update loop. A failing step is reported and skipped; the runner moves on.
func (r *Runner) Step(e *Editor) error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	i := r.cursor
	st := r.steps[i]
	r.cursor++

	err := r.run(e, i, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	if err != nil {
		e.log.Warn("script step failed", zap.Int("step", i), zap.String("action", st.Action), zap.Error(err))
		return fmt.Errorf("step %d (%s): %w", i, st.Action, err)
	}
	return nil
}

func (r *Runner) run(e *Editor, i int, st Step) error {
	switch st.Action {
	case "select":
		return e.SelectByName(st.Node)
	case "set":
		if st.Seconds > 0 {
			return e.EaseTo(r.params[i], st.Value, st.Seconds)
		}
		return e.Set(r.params[i], st.Value)
	case "add":
		kind, err := parseKind(st.Kind)
		if err != nil {
			return err
		}
		_, err = e.Add(kind)
		return err
	case "square":
		return e.AssignSquare()
	case "color":
		return e.SetColor(scenegraph.Color{R: st.Color[0], G: st.Color[1], B: st.Color[2]})
	case "undo":
		return e.Undo()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return nil
	case "export":
		if r.Export == nil {
			return ErrNoExporter
		}
		return r.Export(st.Label)
	}
	return nil
}

func parseKind(s string) (scenegraph.NodeKind, error) {
	for _, k := range []scenegraph.NodeKind{scenegraph.KindTranslate, scenegraph.KindRotate, scenegraph.KindScale} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("node kind %q: %w", s, ErrUnknownParam)
}
