// Package editor is the selection and editing layer on top of a scene graph.
// It holds the current selection as a handle, forwards parameter edits to the
// selected node, appends new transform nodes under it and keeps an undo
// history. It knows nothing about widgets: display adapters mirror the tree
// through Outline.
package editor

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"go.uber.org/zap"

	"github.com/phanxgames/scenegraph"
)

var (
	// ErrNoSelection is returned by edits issued while nothing is selected or
	// the selected node is no longer in the scene.
	ErrNoSelection = errors.New("editor: no node selected")
	// ErrNotFound is returned when a handle or name resolves to no node.
	ErrNotFound = errors.New("editor: node not found")
	// ErrNotUndoable is returned by Undo when the history holds nothing it
	// can restore.
	ErrNotUndoable = errors.New("editor: nothing to undo")
	// ErrUnknownParam is returned for a parameter name or value outside the
	// editable set.
	ErrUnknownParam = errors.New("editor: unknown parameter")
)

// Names given to nodes created by the Add commands.
const (
	NewTranslateName = "newTranslateNode"
	NewRotateName    = "newRotateNode"
	NewScaleName     = "newScaleNode"
)

// Editor applies user edits to the nodes of a scene.
//
// Like the scene itself an Editor is single-threaded: call it from the same
// goroutine that draws.
type Editor struct {
	scene    *scenegraph.Scene
	square   scenegraph.Geometry
	selected scenegraph.Handle

	history *arraystack.Stack // of snapshot
	tweens  []*paramTween

	log *zap.Logger
}

// snapshot is the editable state of one node, enough to undo any edit that
// does not change the tree's shape.
type snapshot struct {
	handle   scenegraph.Handle
	params   scenegraph.Params
	color    scenegraph.Color
	geometry scenegraph.Geometry
}

// New creates an editor for scene. square is the shared geometry AssignSquare
// points nodes at. A nil logger discards output.
func New(scene *scenegraph.Scene, square scenegraph.Geometry, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		scene:   scene,
		square:  square,
		history: arraystack.New(),
		log:     log.Named("editor"),
	}
}

// Scene returns the edited scene.
func (e *Editor) Scene() *scenegraph.Scene {
	return e.scene
}

// Select makes the node carrying h the target of later edits. Handle zero
// clears the selection.
func (e *Editor) Select(h scenegraph.Handle) error {
	if h == 0 {
		e.selected = 0
		return nil
	}
	n := e.scene.Find(h)
	if n == nil {
		return fmt.Errorf("select %d: %w", h, ErrNotFound)
	}
	e.selected = h
	e.log.Debug("select", zap.Uint32("handle", uint32(h)), zap.String("node", n.Name()))
	return nil
}

// SelectByName selects the first node in draw order with the given name.
// Names are labels, not identities, so later duplicates are unreachable here.
func (e *Editor) SelectByName(name string) error {
	var found *scenegraph.Node
	e.scene.Walk(func(n *scenegraph.Node, _ int) bool {
		if found == nil && n.Name() == name {
			found = n
		}
		return found == nil
	})
	if found == nil {
		return fmt.Errorf("select %q: %w", name, ErrNotFound)
	}
	return e.Select(found.Handle())
}

// Selected returns the selected node, or nil when nothing is selected or the
// selected node is not reachable from the scene root.
func (e *Editor) Selected() *scenegraph.Node {
	return e.scene.Find(e.selected)
}

// SelectedHandle returns the raw selection, which may no longer resolve.
func (e *Editor) SelectedHandle() scenegraph.Handle {
	return e.selected
}

func (e *Editor) target() (*scenegraph.Node, error) {
	n := e.Selected()
	if n == nil {
		return nil, ErrNoSelection
	}
	return n, nil
}

// Set writes v into parameter p of the selected node. It fails with
// ErrNoSelection, or with scenegraph.ErrWrongNodeKind when the selection has
// no such parameter; in both cases nothing changes.
func (e *Editor) Set(p Param, v float64) error {
	n, err := e.target()
	if err != nil {
		return fmt.Errorf("set %s: %w", p, err)
	}
	before := snapshotOf(n)
	if err := apply(n, p, v); err != nil {
		return fmt.Errorf("set %s: %w", p, err)
	}
	e.cancelTween(n.Handle(), p)
	e.history.Push(before)
	e.log.Debug("set", zap.String("node", n.Name()), zap.Stringer("param", p), zap.Float64("value", v))
	return nil
}

// SetTranslateX sets the x offset of the selected translate node.
func (e *Editor) SetTranslateX(v float64) error { return e.Set(ParamTranslateX, v) }

// SetTranslateY sets the y offset of the selected translate node.
func (e *Editor) SetTranslateY(v float64) error { return e.Set(ParamTranslateY, v) }

// SetRotation sets the angle, in degrees, of the selected rotate node.
func (e *Editor) SetRotation(deg float64) error { return e.Set(ParamRotation, deg) }

// SetScaleX sets the x factor of the selected scale node.
func (e *Editor) SetScaleX(v float64) error { return e.Set(ParamScaleX, v) }

// SetScaleY sets the y factor of the selected scale node.
func (e *Editor) SetScaleY(v float64) error { return e.Set(ParamScaleY, v) }

// Value reads parameter p of the selected node.
func (e *Editor) Value(p Param) (float64, error) {
	n, err := e.target()
	if err != nil {
		return 0, err
	}
	return value(n, p)
}

// SetColor sets the draw color of the selected node.
func (e *Editor) SetColor(c scenegraph.Color) error {
	n, err := e.target()
	if err != nil {
		return fmt.Errorf("set color: %w", err)
	}
	e.history.Push(snapshotOf(n))
	n.SetColor(c)
	return nil
}

// AssignSquare points the selected node at the shared square.
func (e *Editor) AssignSquare() error {
	n, err := e.target()
	if err != nil {
		return fmt.Errorf("assign square: %w", err)
	}
	e.history.Push(snapshotOf(n))
	n.SetGeometry(e.square)
	return nil
}

// AddTranslate appends a translate node at (0, 0) to the selection and
// returns its handle. The selection does not move.
func (e *Editor) AddTranslate() (scenegraph.Handle, error) {
	return e.add(scenegraph.NewTranslate(NewTranslateName, 0, 0))
}

// AddRotate appends a rotate node at 0 degrees to the selection.
func (e *Editor) AddRotate() (scenegraph.Handle, error) {
	return e.add(scenegraph.NewRotate(NewRotateName, 0))
}

// AddScale appends a scale node to the selection. Its factors start at
// (0, 0), so anything drawn beneath it is invisible until it is edited.
func (e *Editor) AddScale() (scenegraph.Handle, error) {
	return e.add(scenegraph.NewScale(NewScaleName, 0, 0))
}

// Add appends a new node of the given kind to the selection.
func (e *Editor) Add(kind scenegraph.NodeKind) (scenegraph.Handle, error) {
	switch kind {
	case scenegraph.KindTranslate:
		return e.AddTranslate()
	case scenegraph.KindRotate:
		return e.AddRotate()
	case scenegraph.KindScale:
		return e.AddScale()
	default:
		return 0, fmt.Errorf("add %s: %w", kind, ErrUnknownParam)
	}
}

func (e *Editor) add(child *scenegraph.Node) (scenegraph.Handle, error) {
	n, err := e.target()
	if err != nil {
		return 0, fmt.Errorf("add %s: %w", child.Kind(), err)
	}
	n.AddChild(child)
	e.log.Debug("add", zap.String("parent", n.Name()), zap.Stringer("kind", child.Kind()),
		zap.Uint32("handle", uint32(child.Handle())))
	return child.Handle(), nil
}

// Undo restores the node state saved before the most recent parameter, color
// or geometry edit. Added nodes are never removed: the tree only grows.
func (e *Editor) Undo() error {
	v, ok := e.history.Pop()
	if !ok {
		return ErrNotUndoable
	}
	snap := v.(snapshot)
	n := e.scene.Find(snap.handle)
	if n == nil {
		return fmt.Errorf("undo: node %d left the scene: %w", snap.handle, ErrNotUndoable)
	}
	e.cancelTweens(snap.handle)
	if err := n.SetParams(snap.params); err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	n.SetColor(snap.color)
	n.SetGeometry(snap.geometry)
	e.log.Debug("undo", zap.String("node", n.Name()))
	return nil
}

// CanUndo reports whether the history holds any edit.
func (e *Editor) CanUndo() bool {
	return !e.history.Empty()
}

func snapshotOf(n *scenegraph.Node) snapshot {
	return snapshot{
		handle:   n.Handle(),
		params:   n.Params(),
		color:    n.Color(),
		geometry: n.Geometry(),
	}
}
