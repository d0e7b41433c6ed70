package scenegraph

import "fmt"

// FrameStats summarises one traversal.
type FrameStats struct {
	Visited   int // nodes visited
	DrawCalls int // geometry draws issued
	MaxDepth  int // deepest level reached, the root is depth 1
}

// Traverse walks the tree rooted at n depth-first, pre-order. Each node sees
// acc * n.LocalTransform(); when it references geometry, the geometry's color
// is set to the node's color and it is drawn at that matrix before any of the
// node's children. A nil n draws nothing.
//
// Callers must not mutate the tree while Traverse runs.
func Traverse(n *Node, acc Matrix, canvas Canvas) FrameStats {
	var stats FrameStats
	traverse(n, acc, canvas, 1, &stats)
	return stats
}

func traverse(n *Node, acc Matrix, canvas Canvas, depth int, stats *FrameStats) {
	if n == nil {
		return
	}
	stats.Visited++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	current := Compose(acc, n.LocalTransform())

	if g := n.geometry; g != nil {
		if globalDebug {
			debugCheckGeometry(n, g)
		}
		// Color and draw form one step: shared geometry carries only the
		// color of the node currently being drawn.
		g.SetColor(n.color)
		g.Draw(canvas, current)
		stats.DrawCalls++
	}

	for _, child := range n.children {
		traverse(child, current, canvas, depth+1, stats)
	}
}

// Pick returns the topmost node under the root-space point p whose geometry
// supports hit testing, or nil. Topmost means drawn last, so later siblings
// and descendants win over earlier ones.
func Pick(root *Node, p Vec2) *Node {
	var hit *Node
	pick(root, Identity(), p, &hit)
	return hit
}

func pick(n *Node, acc Matrix, p Vec2, hit **Node) {
	if n == nil {
		return
	}
	current := Compose(acc, n.LocalTransform())
	if h, ok := n.geometry.(Hitter); ok && !singular(current) {
		if h.Contains(TransformPoint(current.Inv(), p)) {
			*hit = n
		}
	}
	for _, child := range n.children {
		pick(child, current, p, hit)
	}
}

func debugCheckGeometry(n *Node, g Geometry) {
	if d, ok := g.(Disposer); ok && d.Disposed() {
		panic(fmt.Sprintf("scenegraph debug: node %q (handle %d) references disposed geometry", n.name, n.handle))
	}
}
