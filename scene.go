package scenegraph

import (
	"time"

	"go.uber.org/zap"
)

// Scene owns the tree drawn each frame and resolves handles into it.
//
// A Scene is not safe for concurrent use. The render loop calls Draw once per
// frame; edits happen between frames on the same goroutine.
type Scene struct {
	root     *Node
	observer Observer
	debug    bool

	lastStats    FrameStats
	lastDuration time.Duration
}

// NewScene creates a scene around root. root may be nil and set later.
func NewScene(root *Node) *Scene {
	s := &Scene{}
	s.SetRoot(root)
	return s
}

// Root returns the root node, or nil.
func (s *Scene) Root() *Node {
	return s.root
}

// SetRoot replaces the whole tree. The previous tree loses the scene's
// observer; the new one gets it and the observer is told about it with a nil
// parent.
func (s *Scene) SetRoot(root *Node) {
	if root != nil && root.parent != nil {
		panic("scenegraph: scene root already has a parent")
	}
	if s.root != nil && s.root != root {
		attachObserver(s.root, nil)
	}
	s.root = root
	if root != nil && s.observer != nil {
		attachObserver(root, s.observer)
		s.observer.ChildAdded(nil, root)
	}
}

// SetObserver attaches o to every node of the tree; nodes added later inherit
// it from their parent. Pass nil to detach.
func (s *Scene) SetObserver(o Observer) {
	s.observer = o
	if s.root != nil {
		attachObserver(s.root, o)
	}
}

// Find resolves a handle. It returns nil when no node in the tree carries h,
// so handles to nodes that were never attached, or that belong to another
// tree, never dangle.
func (s *Scene) Find(h Handle) *Node {
	if h == 0 {
		return nil
	}
	var found *Node
	s.Walk(func(n *Node, _ int) bool {
		if n.handle == h {
			found = n
		}
		return found == nil
	})
	return found
}

// Walk visits the tree in pre-order (draw order). depth is 0 for the root.
// Returning false from fn skips the node's children.
func (s *Scene) Walk(fn func(n *Node, depth int) bool) {
	walk(s.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Draw traverses the tree from the identity matrix into canvas.
func (s *Scene) Draw(canvas Canvas) FrameStats {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	stats := Traverse(s.root, Identity(), canvas)

	s.lastStats = stats
	if s.debug {
		s.lastDuration = time.Since(t0)
		s.debugLog(stats, s.lastDuration)
	}
	return stats
}

// LastStats returns the stats of the most recent Draw. The duration is only
// measured in debug mode.
func (s *Scene) LastStats() (FrameStats, time.Duration) {
	return s.lastStats, s.lastDuration
}

// Pick returns the topmost pickable node under the root-space point p.
func (s *Scene) Pick(p Vec2) *Node {
	return Pick(s.root, p)
}

// SetDebugMode enables or disables debug mode. When enabled, drawing disposed
// geometry panics, deep trees and wide nodes are reported as warnings, and
// per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	Logger().Debug("debug mode", zap.Bool("enabled", enabled))
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool
