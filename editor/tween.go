package editor

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/scenegraph"
)

// NudgeDuration is how long a Nudge takes to settle, in seconds.
const NudgeDuration = 0.15

// paramTween eases one parameter of one node. The node is looked up by handle
// on every Update, so a tween whose node leaves the scene simply stops.
type paramTween struct {
	handle scenegraph.Handle
	param  Param
	target float64
	tween  *gween.Tween
}

// EaseTo animates parameter p of the selected node towards target over the
// given number of seconds. The value is written on each Update; the previous
// state is recorded for Undo once, when the animation starts. A duration of
// zero or less sets the value immediately.
func (e *Editor) EaseTo(p Param, target, seconds float64) error {
	return e.easeTo(p, target, seconds, ease.InOutQuad)
}

func (e *Editor) easeTo(p Param, target, seconds float64, fn ease.TweenFunc) error {
	if seconds <= 0 {
		return e.Set(p, target)
	}
	n, err := e.target()
	if err != nil {
		return fmt.Errorf("ease %s: %w", p, err)
	}
	from, err := value(n, p)
	if err != nil {
		return fmt.Errorf("ease %s: %w", p, err)
	}
	e.cancelTween(n.Handle(), p)
	e.history.Push(snapshotOf(n))
	e.tweens = append(e.tweens, &paramTween{
		handle: n.Handle(),
		param:  p,
		target: target,
		tween:  gween.New(float32(from), float32(target), float32(seconds), fn),
	})
	return nil
}

// Nudge moves parameter p of the selection by delta with a short ease-out.
// Repeated nudges accumulate on the pending target rather than on the value
// currently on screen.
func (e *Editor) Nudge(p Param, delta float64) error {
	n, err := e.target()
	if err != nil {
		return fmt.Errorf("nudge %s: %w", p, err)
	}
	base, err := value(n, p)
	if err != nil {
		return fmt.Errorf("nudge %s: %w", p, err)
	}
	if t := e.findTween(n.Handle(), p); t != nil {
		base = t.target
	}
	return e.easeTo(p, base+delta, NudgeDuration, ease.OutQuad)
}

// Update advances every running animation by dt seconds. Call it once per
// frame, before drawing.
func (e *Editor) Update(dt float64) {
	if len(e.tweens) == 0 {
		return
	}
	live := e.tweens[:0]
	for _, t := range e.tweens {
		n := e.scene.Find(t.handle)
		if n == nil {
			continue
		}
		val, finished := t.tween.Update(float32(dt))
		v := float64(val)
		if finished {
			v = t.target
		}
		if err := apply(n, t.param, v); err != nil {
			continue
		}
		if !finished {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = live
}

// Animating reports whether any eased edit is still running.
func (e *Editor) Animating() bool {
	return len(e.tweens) > 0
}

func (e *Editor) findTween(h scenegraph.Handle, p Param) *paramTween {
	for _, t := range e.tweens {
		if t.handle == h && t.param == p {
			return t
		}
	}
	return nil
}

func (e *Editor) cancelTween(h scenegraph.Handle, p Param) {
	e.removeTweens(func(t *paramTween) bool { return t.handle == h && t.param == p })
}

func (e *Editor) cancelTweens(h scenegraph.Handle) {
	e.removeTweens(func(t *paramTween) bool { return t.handle == h })
}

func (e *Editor) removeTweens(match func(*paramTween) bool) {
	kept := e.tweens[:0]
	for _, t := range e.tweens {
		if !match(t) {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = kept
}
