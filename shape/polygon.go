// Package shape provides the shared geometry drawn by scene graph nodes: filled
// convex polygons and a background grid.
package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/scenegraph"
)

// Polygon is a filled convex polygon in its own local frame. One Polygon is
// typically shared by many nodes; the color it draws with is whatever the
// last SetColor call stored.
type Polygon struct {
	points   []scenegraph.Vec2
	color    scenegraph.Color
	buf      []scenegraph.Vec2 // reused world-space buffer
	disposed bool
}

// NewPolygon creates a polygon from points in either winding order. The
// points are copied.
func NewPolygon(points []scenegraph.Vec2) *Polygon {
	p := &Polygon{points: make([]scenegraph.Vec2, len(points))}
	copy(p.points, points)
	return p
}

// NewSquare creates the unit square centred at the origin.
func NewSquare() *Polygon {
	return NewPolygon([]scenegraph.Vec2{
		{0.5, 0.5},
		{-0.5, 0.5},
		{-0.5, -0.5},
		{0.5, -0.5},
	})
}

// NewRegularPolygon creates a regular polygon with the given number of sides,
// inscribed in a circle of radius 0.5. The first vertex lies on the +x axis,
// so a triangle points right until rotated. Panics if sides < 3.
func NewRegularPolygon(sides int) *Polygon {
	if sides < 3 {
		panic("shape: a polygon needs at least 3 sides")
	}
	points := make([]scenegraph.Vec2, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range points {
		sin, cos := math.Sincos(float64(i) * step)
		points[i] = mgl64.Vec2{0.5 * cos, 0.5 * sin}
	}
	return NewPolygon(points)
}

// Points returns the local-space vertices. The returned slice MUST NOT be
// mutated by the caller.
func (p *Polygon) Points() []scenegraph.Vec2 {
	return p.points
}

// Color returns the color stored by the last SetColor.
func (p *Polygon) Color() scenegraph.Color {
	return p.color
}

// SetColor sets the color used by the next Draw.
func (p *Polygon) SetColor(c scenegraph.Color) {
	p.color = c
}

// Draw fills the polygon transformed by model.
func (p *Polygon) Draw(canvas scenegraph.Canvas, model scenegraph.Matrix) {
	if len(p.points) < 3 {
		return
	}
	if cap(p.buf) < len(p.points) {
		p.buf = make([]scenegraph.Vec2, len(p.points))
	}
	p.buf = p.buf[:len(p.points)]
	for i, pt := range p.points {
		p.buf[i] = scenegraph.TransformPoint(model, pt)
	}
	canvas.FillPolygon(p.buf, p.color)
}

// Contains reports whether the local-space point lies inside or on the
// polygon, using a cross-product sign test valid for convex polygons.
func (p *Polygon) Contains(pt scenegraph.Vec2) bool {
	n := len(p.points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.points[i]
		b := p.points[(i+1)%n]
		cross := (b.X()-a.X())*(pt.Y()-a.Y()) - (b.Y()-a.Y())*(pt.X()-a.X())
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Dispose marks the polygon as released. Nodes still pointing at it make
// debug-mode traversal panic.
func (p *Polygon) Dispose() {
	p.disposed = true
	p.buf = nil
}

// Disposed reports whether Dispose was called.
func (p *Polygon) Disposed() bool {
	return p.disposed
}
