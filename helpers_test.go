package scenegraph

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPoint(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// drawRecord is one Draw call seen by recordingGeometry.
type drawRecord struct {
	geometry string
	color    Color
	model    Matrix
}

// drawLog collects draws from every recordingGeometry sharing it.
type drawLog struct {
	draws []drawRecord
}

// recordingGeometry is a Geometry that logs the color it holds at draw time.
type recordingGeometry struct {
	name     string
	color    Color
	log      *drawLog
	disposed bool
}

func (g *recordingGeometry) SetColor(c Color) { g.color = c }

func (g *recordingGeometry) Draw(_ Canvas, model Matrix) {
	g.log.draws = append(g.log.draws, drawRecord{geometry: g.name, color: g.color, model: model})
}

func (g *recordingGeometry) Disposed() bool { return g.disposed }

// unitBox is a pickable geometry covering [-0.5, 0.5]².
type unitBox struct{ recordingGeometry }

func (b *unitBox) Contains(p Vec2) bool {
	return math.Abs(p.X()) <= 0.5 && math.Abs(p.Y()) <= 0.5
}

// nopCanvas ignores every draw.
type nopCanvas struct{}

func (nopCanvas) FillPolygon([]Vec2, Color)  {}
func (nopCanvas) StrokeLine(_, _ Vec2, _ Color) {}

// recordingObserver logs observer callbacks by node name.
type recordingObserver struct {
	added   []string
	changed []string
}

func (o *recordingObserver) ChildAdded(parent, child *Node) {
	p := "<nil>"
	if parent != nil {
		p = parent.Name()
	}
	o.added = append(o.added, p+">"+child.Name())
}

func (o *recordingObserver) NodeChanged(n *Node) {
	o.changed = append(o.changed, n.Name())
}
