// Package svgcanvas renders scene graph frames as SVG documents.
package svgcanvas

import (
	"fmt"
	"io"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/phanxgames/scenegraph"
	"github.com/phanxgames/scenegraph/export"
)

// DefaultStrokeWidth is the width of stroked lines in world units.
const DefaultStrokeWidth = 0.02

// Canvas implements scenegraph.Canvas by writing SVG paths. Coordinates are
// emitted in world units; Begin sets up a viewBox and flips y so the picture
// matches the on-screen view.
type Canvas struct {
	StrokeWidth float64

	canvas *svg.SVG
	out    *errWriter

	fills int
	lines int
}

var _ scenegraph.Canvas = (*Canvas)(nil)

// New creates a canvas writing to out.
func New(out io.Writer) *Canvas {
	ew := &errWriter{w: out}
	return &Canvas{
		StrokeWidth: DefaultStrokeWidth,
		canvas:      svg.New(ew),
		out:         ew,
	}
}

// Begin starts the document. unitsAcross world units, centred on the
// origin, fill the picture in both directions.
func (c *Canvas) Begin(unitsAcross float64) {
	h := unitsAcross / 2
	c.canvas.Startpercent(100, 100,
		fmt.Sprintf(`viewBox="%s %s %s %s"`, num(-h), num(-h), num(unitsAcross), num(unitsAcross)))
	c.canvas.Gtransform("scale(1,-1)")
}

// End closes the document and returns the first write error, if any.
func (c *Canvas) End() error {
	c.canvas.Gend()
	c.canvas.End()
	return c.out.err
}

// FillPolygon writes a closed, filled path.
func (c *Canvas) FillPolygon(points []scenegraph.Vec2, col scenegraph.Color) {
	if len(points) < 3 {
		return
	}
	c.canvas.Path(polygonPath(points), fill(col), `stroke="none"`)
	c.fills++
}

// StrokeLine writes a single-segment path.
func (c *Canvas) StrokeLine(a, b scenegraph.Vec2, col scenegraph.Color) {
	d := fmt.Sprintf("M %s %s L %s %s", num(a.X()), num(a.Y()), num(b.X()), num(b.Y()))
	c.canvas.Path(d, stroke(col), fmt.Sprintf(`stroke-width="%s"`, num(c.StrokeWidth)), `fill="none"`)
	c.lines++
}

// Counts returns how many polygons and lines were written.
func (c *Canvas) Counts() (fills, lines int) {
	return c.fills, c.lines
}

// Render writes one complete frame: grid (may be nil) first, then the scene.
func Render(out io.Writer, scene *scenegraph.Scene, grid scenegraph.Geometry, unitsAcross float64) (scenegraph.FrameStats, error) {
	c := New(out)
	c.Begin(unitsAcross)
	if grid != nil {
		c.canvas.Group(`id="grid"`)
		grid.Draw(c, scenegraph.Identity())
		c.canvas.Gend()
	}
	c.canvas.Group(`id="scene"`)
	stats := scene.Draw(c)
	c.canvas.Gend()
	if err := c.End(); err != nil {
		return stats, fmt.Errorf("svg render: %w", err)
	}
	return stats, nil
}

// Export renders the frame into a timestamped file under dir and returns its
// path.
func Export(dir, label string, scene *scenegraph.Scene, grid scenegraph.Geometry, unitsAcross float64, now time.Time) (string, error) {
	f, err := export.Create(dir, label, "svg", now)
	if err != nil {
		return "", err
	}
	if _, err := Render(f, scene, grid, unitsAcross); err != nil {
		f.Close()
		return "", err
	}
	return f.Name(), f.Close()
}

func polygonPath(points []scenegraph.Vec2) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(num(p.X()))
		b.WriteByte(' ')
		b.WriteString(num(p.Y()))
	}
	b.WriteString(" Z")
	return b.String()
}

func fill(c scenegraph.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf(`fill="rgb(%d,%d,%d)"`, n.R, n.G, n.B)
}

func stroke(c scenegraph.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf(`stroke="rgb(%d,%d,%d)"`, n.R, n.G, n.B)
}

// num formats a coordinate compactly; -0 prints as 0.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.6g", v)
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
