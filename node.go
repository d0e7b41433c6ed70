package scenegraph

// Handle identifies a node without owning it. Handles are unique for the life
// of the process and never zero; resolve one with Scene.Find.
type Handle uint32

// handleCounter is a plain counter (no atomic, the scene graph is
// single-threaded).
var handleCounter uint32

func nextHandle() Handle {
	handleCounter++
	return Handle(handleCounter)
}

// Node is a scene graph element: one local transform, an optional reference to
// shared geometry and the color that geometry is drawn with.
//
// A node owns its children. It never owns its geometry: many nodes may point
// at the same Geometry, and the caller keeps it alive for as long as any node
// references it.
type Node struct {
	handle Handle
	name   string
	params Params

	color    Color
	geometry Geometry

	parent   *Node
	children []*Node

	observer Observer
}

// NewNode creates a node with the given parameters. A nil Params is treated as
// Group. Pointer variants are stored by value.
func NewNode(name string, p Params) *Node {
	p = valueOf(p)
	if p == nil {
		p = Group{}
	}
	return &Node{handle: nextHandle(), name: name, params: p}
}

// NewGroup creates an identity node.
func NewGroup(name string) *Node {
	return NewNode(name, Group{})
}

// NewTranslate creates a node that translates by (tx, ty).
func NewTranslate(name string, tx, ty float64) *Node {
	return NewNode(name, Translate{X: tx, Y: ty})
}

// NewRotate creates a node that rotates counter-clockwise by degrees.
func NewRotate(name string, degrees float64) *Node {
	return NewNode(name, Rotate{Degrees: degrees})
}

// NewScale creates a node that scales by (sx, sy).
func NewScale(name string, sx, sy float64) *Node {
	return NewNode(name, Scale{X: sx, Y: sy})
}

// --- Tree manipulation ---

// AddChild appends child to this node's children and returns it, so the
// freshly inserted node can be configured in the same expression:
//
//	head := torso.AddChild(scenegraph.NewTranslate("head", 0, 1))
//	head.SetColor(blue)
//
// Ownership moves to n. Panics if child is nil, already has a parent (use
// Clone to duplicate a subtree) or is an ancestor of n.
func (n *Node) AddChild(child *Node) *Node {
	if child == nil {
		panic("scenegraph: cannot add nil child")
	}
	if child.parent != nil {
		panic("scenegraph: child already has a parent")
	}
	if isAncestor(child, n) {
		panic("scenegraph: adding child would create a cycle")
	}
	child.parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	if n.observer != nil {
		attachObserver(child, n.observer)
		n.observer.ChildAdded(n, child)
	}
	return child
}

// Children returns the child list in draw order. The returned slice MUST NOT
// be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Parent returns the owning node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// --- Accessors ---

// Handle returns the node's stable identifier.
func (n *Node) Handle() Handle {
	return n.handle
}

// Name returns the display label.
func (n *Node) Name() string {
	return n.name
}

// SetName changes the display label.
func (n *Node) SetName(name string) {
	n.name = name
	n.changed()
}

// Kind returns the node's transform kind.
func (n *Node) Kind() NodeKind {
	return n.params.Kind()
}

// Params returns a copy of the node's parameters.
func (n *Node) Params() Params {
	return n.params
}

// Color returns the color the node's geometry is drawn with.
func (n *Node) Color() Color {
	return n.color
}

// SetColor sets the draw color. Takes effect on the next traversal.
func (n *Node) SetColor(c Color) {
	n.color = c
	n.changed()
}

// Geometry returns the referenced geometry, or nil.
func (n *Node) Geometry() Geometry {
	return n.geometry
}

// SetGeometry points the node at g (nil clears it). The node does not take
// ownership and does not check that g is still alive.
func (n *Node) SetGeometry(g Geometry) {
	n.geometry = g
	n.changed()
}

// --- Kind-specific setters ---

// SetParams replaces the node's parameters. The new parameters must be of the
// node's kind; a node never changes kind after construction. Pointer variants
// are stored by value.
func (n *Node) SetParams(p Params) error {
	p = valueOf(p)
	if p == nil || p.Kind() != n.Kind() {
		want := KindGroup
		if p != nil {
			want = p.Kind()
		}
		return &KindError{Op: "SetParams", Node: n.name, Want: want, Have: n.Kind()}
	}
	n.params = p
	n.changed()
	return nil
}

// SetTranslateX sets the x offset of a translate node.
func (n *Node) SetTranslateX(x float64) error {
	p, ok := n.params.(Translate)
	if !ok {
		return n.kindError("SetTranslateX", KindTranslate)
	}
	p.X = x
	n.params = p
	n.changed()
	return nil
}

// SetTranslateY sets the y offset of a translate node.
func (n *Node) SetTranslateY(y float64) error {
	p, ok := n.params.(Translate)
	if !ok {
		return n.kindError("SetTranslateY", KindTranslate)
	}
	p.Y = y
	n.params = p
	n.changed()
	return nil
}

// SetRotationDegrees sets the angle of a rotate node.
func (n *Node) SetRotationDegrees(deg float64) error {
	if _, ok := n.params.(Rotate); !ok {
		return n.kindError("SetRotationDegrees", KindRotate)
	}
	n.params = Rotate{Degrees: deg}
	n.changed()
	return nil
}

// SetScaleX sets the x factor of a scale node.
func (n *Node) SetScaleX(sx float64) error {
	p, ok := n.params.(Scale)
	if !ok {
		return n.kindError("SetScaleX", KindScale)
	}
	p.X = sx
	n.params = p
	n.changed()
	return nil
}

// SetScaleY sets the y factor of a scale node.
func (n *Node) SetScaleY(sy float64) error {
	p, ok := n.params.(Scale)
	if !ok {
		return n.kindError("SetScaleY", KindScale)
	}
	p.Y = sy
	n.params = p
	n.changed()
	return nil
}

func (n *Node) kindError(op string, want NodeKind) error {
	return &KindError{Op: op, Node: n.name, Want: want, Have: n.Kind()}
}

// --- Copy ---

// Clone returns a deep copy of the subtree rooted at n. Every copy keeps its
// variant, parameters, color, name and geometry reference; the geometry itself
// is shared, not copied. Copies get fresh handles and no parent or observer.
func (n *Node) Clone() *Node {
	c := &Node{
		handle:   nextHandle(),
		name:     n.name,
		params:   n.params,
		color:    n.color,
		geometry: n.geometry,
	}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			cc := child.Clone()
			cc.parent = c
			c.children[i] = cc
		}
	}
	return c
}

// --- Helpers ---

func (n *Node) changed() {
	if n.observer != nil {
		n.observer.NodeChanged(n)
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
