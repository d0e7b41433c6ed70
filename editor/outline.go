package editor

import (
	"fmt"

	"github.com/phanxgames/scenegraph"
)

// Row is one line of an Outline.
type Row struct {
	Handle scenegraph.Handle
	Depth  int // 0 for the root
	Label  string
}

// Outline mirrors a scene's tree as a flat list of rows in draw order, the
// shape a tree widget or text panel wants. It implements
// scenegraph.Observer: attach it with Scene.SetObserver (alone or inside
// scenegraph.Observers) and it stays in sync with structural and parameter
// changes.
type Outline struct {
	scene *scenegraph.Scene
	rows  []Row
	index map[scenegraph.Handle]int
}

var _ scenegraph.Observer = (*Outline)(nil)

// NewOutline builds an outline of the scene's current tree.
func NewOutline(scene *scenegraph.Scene) *Outline {
	o := &Outline{scene: scene}
	o.Rebuild()
	return o
}

// Rebuild recomputes every row from the tree.
func (o *Outline) Rebuild() {
	o.rows = o.rows[:0]
	o.index = make(map[scenegraph.Handle]int, cap(o.rows))
	o.scene.Walk(func(n *scenegraph.Node, depth int) bool {
		o.index[n.Handle()] = len(o.rows)
		o.rows = append(o.rows, Row{Handle: n.Handle(), Depth: depth, Label: Label(n)})
		return true
	})
}

// ChildAdded rebuilds the rows; an insertion shifts every row after it.
func (o *Outline) ChildAdded(_, _ *scenegraph.Node) {
	o.Rebuild()
}

// NodeChanged relabels the node's row in place.
func (o *Outline) NodeChanged(n *scenegraph.Node) {
	if i, ok := o.index[n.Handle()]; ok {
		o.rows[i].Label = Label(n)
	}
}

// Rows returns the rows in draw order. The returned slice MUST NOT be
// mutated by the caller.
func (o *Outline) Rows() []Row {
	return o.rows
}

// Len returns the number of rows.
func (o *Outline) Len() int {
	return len(o.rows)
}

// Index returns the row of h, or -1.
func (o *Outline) Index(h scenegraph.Handle) int {
	if i, ok := o.index[h]; ok {
		return i
	}
	return -1
}

// Next returns the handle on the row after h, wrapping at the end. An unknown
// or zero h yields the first row. Returns 0 for an empty outline.
func (o *Outline) Next(h scenegraph.Handle) scenegraph.Handle {
	return o.step(h, 1)
}

// Prev returns the handle on the row before h, wrapping at the start. An
// unknown or zero h yields the last row.
func (o *Outline) Prev(h scenegraph.Handle) scenegraph.Handle {
	return o.step(h, -1)
}

func (o *Outline) step(h scenegraph.Handle, dir int) scenegraph.Handle {
	n := len(o.rows)
	if n == 0 {
		return 0
	}
	i, ok := o.index[h]
	switch {
	case !ok && dir > 0:
		i = 0
	case !ok:
		i = n - 1
	default:
		i = (i + dir + n) % n
	}
	return o.rows[i].Handle
}

// Label is the text shown for a node: its name followed by its parameters.
func Label(n *scenegraph.Node) string {
	return fmt.Sprintf("%s  %v", n.Name(), n.Params())
}
