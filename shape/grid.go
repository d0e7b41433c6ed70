package shape

import "github.com/phanxgames/scenegraph"

// Grid draws unit-spaced lines from -Half to +Half on both axes, with the two
// axes in AxisColor.
type Grid struct {
	Half      int
	AxisColor scenegraph.Color

	color    scenegraph.Color
	disposed bool
}

// NewGrid creates a grid spanning [-half, half] in both directions.
func NewGrid(half int) *Grid {
	return &Grid{
		Half:      half,
		AxisColor: scenegraph.ColorBlack,
		color:     scenegraph.Color{R: 0.7, G: 0.7, B: 0.7},
	}
}

// SetColor sets the color of the non-axis lines.
func (g *Grid) SetColor(c scenegraph.Color) {
	g.color = c
}

// Color returns the color of the non-axis lines.
func (g *Grid) Color() scenegraph.Color {
	return g.color
}

// Draw strokes every grid line transformed by model. Axes are drawn last so
// they stay on top.
func (g *Grid) Draw(canvas scenegraph.Canvas, model scenegraph.Matrix) {
	h := float64(g.Half)
	line := func(x0, y0, x1, y1 float64, c scenegraph.Color) {
		a := scenegraph.TransformPoint(model, scenegraph.Vec2{x0, y0})
		b := scenegraph.TransformPoint(model, scenegraph.Vec2{x1, y1})
		canvas.StrokeLine(a, b, c)
	}
	for i := -g.Half; i <= g.Half; i++ {
		if i == 0 {
			continue
		}
		v := float64(i)
		line(v, -h, v, h, g.color)
		line(-h, v, h, v, g.color)
	}
	line(0, -h, 0, h, g.AxisColor)
	line(-h, 0, h, 0, g.AxisColor)
}

// LineCount returns how many lines Draw strokes.
func (g *Grid) LineCount() int {
	return 4*g.Half + 2
}

// Dispose marks the grid as released.
func (g *Grid) Dispose() {
	g.disposed = true
}

// Disposed reports whether Dispose was called.
func (g *Grid) Disposed() bool {
	return g.disposed
}
