// Package inspect exposes a read-only view of a running scene over HTTP:
// JSON snapshots of the tree, a websocket stream of published snapshots and
// Prometheus metrics.
//
// The scene graph is single-threaded, so HTTP handlers never touch it. The
// render loop captures an immutable Snapshot between frames and publishes it;
// handlers serve the last published copy.
package inspect

import (
	"github.com/phanxgames/scenegraph"
)

// NodeSnapshot is the serialisable state of one node.
type NodeSnapshot struct {
	Handle      uint32             `json:"handle"`
	Name        string             `json:"name"`
	Kind        string             `json:"kind"`
	Params      map[string]float64 `json:"params,omitempty"`
	Color       [3]float64         `json:"color"`
	HasGeometry bool               `json:"hasGeometry"`
	Children    []*NodeSnapshot    `json:"children,omitempty"`
}

// Stats are the traversal counters of the frame a snapshot was taken after.
type Stats struct {
	Visited   int `json:"visited"`
	DrawCalls int `json:"drawCalls"`
	MaxDepth  int `json:"maxDepth"`
}

// Snapshot is an immutable copy of a scene taken between frames.
type Snapshot struct {
	Frame uint64        `json:"frame"`
	Stats Stats         `json:"stats"`
	Root  *NodeSnapshot `json:"root,omitempty"`

	index map[uint32]*NodeSnapshot
}

// Capture copies the scene's tree and last frame stats. frame is the caller's
// frame counter, echoed back to clients.
func Capture(scene *scenegraph.Scene, frame uint64) *Snapshot {
	stats, _ := scene.LastStats()
	snap := &Snapshot{
		Frame: frame,
		Stats: Stats{Visited: stats.Visited, DrawCalls: stats.DrawCalls, MaxDepth: stats.MaxDepth},
		index: make(map[uint32]*NodeSnapshot),
	}
	snap.Root = snap.capture(scene.Root())
	return snap
}

func (s *Snapshot) capture(n *scenegraph.Node) *NodeSnapshot {
	if n == nil {
		return nil
	}
	c := n.Color()
	ns := &NodeSnapshot{
		Handle:      uint32(n.Handle()),
		Name:        n.Name(),
		Kind:        n.Kind().String(),
		Params:      paramsOf(n.Params()),
		Color:       [3]float64{c.R, c.G, c.B},
		HasGeometry: n.Geometry() != nil,
	}
	s.index[ns.Handle] = ns
	if n.NumChildren() > 0 {
		ns.Children = make([]*NodeSnapshot, 0, n.NumChildren())
		for _, child := range n.Children() {
			ns.Children = append(ns.Children, s.capture(child))
		}
	}
	return ns
}

// Node returns the snapshot of the node with handle h, or nil.
func (s *Snapshot) Node(h uint32) *NodeSnapshot {
	return s.index[h]
}

// Len returns the number of nodes in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.index)
}

func paramsOf(p scenegraph.Params) map[string]float64 {
	switch p := p.(type) {
	case scenegraph.Translate:
		return map[string]float64{"tx": p.X, "ty": p.Y}
	case scenegraph.Rotate:
		return map[string]float64{"rotation": p.Degrees}
	case scenegraph.Scale:
		return map[string]float64{"sx": p.X, "sy": p.Y}
	default:
		return nil
	}
}
