// Package ebitencanvas draws scene graph geometry onto an Ebitengine image.
//
// Every polygon and line of a frame is appended, already in screen space, to
// one vertex buffer and submitted with a single DrawTriangles32 call on Flush.
// Polygons are fan-triangulated; lines become thin quads. Both sample a shared
// 1x1 white pixel so the vertex color is the fill color.
package ebitencanvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scenegraph"
)

// DefaultLineWidth is the stroke width of grid lines, in pixels.
const DefaultLineWidth = 1.0

// Canvas implements scenegraph.Canvas on an *ebiten.Image.
type Canvas struct {
	// LineWidth is the stroke width in pixels. Values <= 0 use
	// DefaultLineWidth.
	LineWidth float64

	dst  *ebiten.Image
	view scenegraph.Matrix

	verts []ebiten.Vertex
	inds  []uint32

	triangles int
}

var _ scenegraph.Canvas = (*Canvas)(nil)

// New creates a canvas that draws onto dst through view, the matrix taking
// world units to pixels (see ViewMatrix).
func New(dst *ebiten.Image, view scenegraph.Matrix) *Canvas {
	return &Canvas{dst: dst, view: view, LineWidth: DefaultLineWidth}
}

// Reset retargets the canvas for a new frame. Buffered geometry that was not
// flushed is discarded.
func (c *Canvas) Reset(dst *ebiten.Image, view scenegraph.Matrix) {
	c.dst = dst
	c.view = view
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	c.triangles = 0
}

// View returns the world-to-pixel matrix.
func (c *Canvas) View() scenegraph.Matrix {
	return c.view
}

// FillPolygon buffers a filled convex polygon given in world units.
func (c *Canvas) FillPolygon(points []scenegraph.Vec2, col scenegraph.Color) {
	c.verts, c.inds = appendFan(c.verts, c.inds, points, c.view, col)
}

// StrokeLine buffers a line segment given in world units.
func (c *Canvas) StrokeLine(a, b scenegraph.Vec2, col scenegraph.Color) {
	w := c.LineWidth
	if w <= 0 {
		w = DefaultLineWidth
	}
	c.verts, c.inds = appendLine(c.verts, c.inds, a, b, w, c.view, col)
}

// Flush submits everything buffered since the last flush and returns the
// number of triangles drawn.
func (c *Canvas) Flush() int {
	if len(c.inds) == 0 || c.dst == nil {
		return 0
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = true
	c.dst.DrawTriangles32(c.verts, c.inds, ensureWhitePixel(), &triOp)

	n := len(c.inds) / 3
	c.triangles += n
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	return n
}

// Triangles returns the number of triangles flushed since the last Reset.
func (c *Canvas) Triangles() int {
	return c.triangles
}

// Pending returns the number of buffered vertices and indices.
func (c *Canvas) Pending() (vertices, indices int) {
	return len(c.verts), len(c.inds)
}

// ViewMatrix maps world units to the pixels of a w x h target: the world
// origin lands in the centre, unitsAcross world units span the shorter side,
// and y grows upwards so positive angles turn counter-clockwise on screen.
func ViewMatrix(w, h int, unitsAcross float64) scenegraph.Matrix {
	side := math.Min(float64(w), float64(h))
	s := side / unitsAcross
	return scenegraph.Compose(
		scenegraph.Translate{X: float64(w) / 2, Y: float64(h) / 2}.Local(),
		scenegraph.Scale{X: s, Y: -s}.Local(),
	)
}

// appendFan triangulates a convex polygon as a fan around its first vertex,
// transforming every point by view. Fewer than three points add nothing.
func appendFan(verts []ebiten.Vertex, inds []uint32, points []scenegraph.Vec2, view scenegraph.Matrix, col scenegraph.Color) ([]ebiten.Vertex, []uint32) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	base := uint32(len(verts))
	r, g, b := vertexColor(col)
	for _, p := range points {
		verts = append(verts, vertex(scenegraph.TransformPoint(view, p), r, g, b))
	}
	for i := 1; i < n-1; i++ {
		inds = append(inds, base, base+uint32(i), base+uint32(i+1))
	}
	return verts, inds
}

// appendLine adds the segment a-b as a quad width pixels wide. The width is
// applied after the view transform so lines stay crisp at any zoom.
func appendLine(verts []ebiten.Vertex, inds []uint32, a, b scenegraph.Vec2, width float64, view scenegraph.Matrix, col scenegraph.Color) ([]ebiten.Vertex, []uint32) {
	sa := scenegraph.TransformPoint(view, a)
	sb := scenegraph.TransformPoint(view, b)
	d := sb.Sub(sa)
	l := d.Len()
	if l == 0 {
		return verts, inds
	}
	// Unit normal scaled to half the width.
	nx, ny := -d.Y()/l*width/2, d.X()/l*width/2

	base := uint32(len(verts))
	r, g, bl := vertexColor(col)
	verts = append(verts,
		vertex(scenegraph.Vec2{sa.X() + nx, sa.Y() + ny}, r, g, bl),
		vertex(scenegraph.Vec2{sb.X() + nx, sb.Y() + ny}, r, g, bl),
		vertex(scenegraph.Vec2{sb.X() - nx, sb.Y() - ny}, r, g, bl),
		vertex(scenegraph.Vec2{sa.X() - nx, sa.Y() - ny}, r, g, bl),
	)
	inds = append(inds, base, base+1, base+2, base, base+2, base+3)
	return verts, inds
}

func vertex(p scenegraph.Vec2, r, g, b float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X()),
		DstY:   float32(p.Y()),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: 1,
	}
}

func vertexColor(c scenegraph.Color) (r, g, b float32) {
	n := c.NRGBA()
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255
}

// --- White pixel singleton (no sync.Once, drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
