package scenegraph

import "github.com/go-gl/mathgl/mgl64"

// Matrix is a 3x3 homogeneous 2D transform in column-major order. Points are
// column vectors, so a child's matrix composes as parent.Mul3(local):
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix = mgl64.Mat3

// Identity returns the identity matrix, the starting accumulator for a
// traversal from the root.
func Identity() Matrix {
	return mgl64.Ident3()
}

// Compose returns parent * local: local is applied first, in the parent's
// coordinate frame.
func Compose(parent, local Matrix) Matrix {
	return parent.Mul3(local)
}

// TransformPoint applies m to the point p.
func TransformPoint(m Matrix, p Vec2) Vec2 {
	return m.Mul3x1(p.Vec3(1)).Vec2()
}

// Invert returns the inverse of m. Returns the identity matrix if m is
// singular (determinant ≈ 0), for instance under a zero scale.
func Invert(m Matrix) Matrix {
	if singular(m) {
		return mgl64.Ident3()
	}
	return m.Inv()
}

func singular(m Matrix) bool {
	det := m.Det()
	return det > -1e-12 && det < 1e-12
}

// LocalTransform computes the node's own transform from its parameters.
// It never looks at children or geometry.
func (n *Node) LocalTransform() Matrix {
	return n.params.Local()
}

// WorldTransform returns the product of every ancestor's local transform and
// the node's own, i.e. the accumulated matrix a traversal from the root would
// hand to this node's geometry.
func (n *Node) WorldTransform() Matrix {
	m := n.LocalTransform()
	for p := n.parent; p != nil; p = p.parent {
		m = Compose(p.LocalTransform(), m)
	}
	return m
}

// LocalToWorld converts a point in this node's frame to root space.
func (n *Node) LocalToWorld(p Vec2) Vec2 {
	return TransformPoint(n.WorldTransform(), p)
}

// WorldToLocal converts a root-space point into this node's frame.
func (n *Node) WorldToLocal(p Vec2) Vec2 {
	return TransformPoint(Invert(n.WorldTransform()), p)
}
