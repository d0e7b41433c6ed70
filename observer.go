package scenegraph

// Observer is notified of changes to a tree it is attached to. Display
// adapters (tree widgets, inspectors) implement it to mirror the tree without
// the tree knowing about them. Callbacks run synchronously on the goroutine
// that made the change.
type Observer interface {
	// ChildAdded is called after child (and its subtree) became reachable
	// under parent.
	ChildAdded(parent, child *Node)
	// NodeChanged is called after a node's name, parameters, color or
	// geometry changed.
	NodeChanged(n *Node)
}

// Observers fans notifications out to several observers in order.
type Observers []Observer

func (obs Observers) ChildAdded(parent, child *Node) {
	for _, o := range obs {
		o.ChildAdded(parent, child)
	}
}

func (obs Observers) NodeChanged(n *Node) {
	for _, o := range obs {
		o.NodeChanged(n)
	}
}

// attachObserver sets o on n and all its descendants.
func attachObserver(n *Node, o Observer) {
	n.observer = o
	for _, child := range n.children {
		attachObserver(child, o)
	}
}
