package figure

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/scenegraph"
	"github.com/phanxgames/scenegraph/shape"
)

type countingCanvas struct {
	fills []scenegraph.Color
}

func (c *countingCanvas) FillPolygon(_ []scenegraph.Vec2, col scenegraph.Color) {
	c.fills = append(c.fills, col)
}

func (c *countingCanvas) StrokeLine(_, _ scenegraph.Vec2, _ scenegraph.Color) {}

func byName(t *testing.T, root *scenegraph.Node, name string) *scenegraph.Node {
	t.Helper()
	var found *scenegraph.Node
	scenegraph.NewScene(root).Walk(func(n *scenegraph.Node, _ int) bool {
		if n.Name() == name {
			found = n
		}
		return found == nil
	})
	require.NotNil(t, found, "node %q", name)
	return found
}

func childNames(n *scenegraph.Node) []string {
	var names []string
	for _, c := range n.Children() {
		names = append(names, c.Name())
	}
	return names
}

func TestBuildStructure(t *testing.T) {
	torso := Build(NewShapes())

	assert.Equal(t, "TorsoT", torso.Name())
	assert.Equal(t, scenegraph.KindTranslate, torso.Kind())
	assert.Equal(t, []string{
		"TranslatePivotTorsoArmLeft",
		"TranslatePivotTorsoArmRight",
		"TranslateHead",
		"TranslateLegLeft",
		"TranslateLegRight",
	}, childNames(torso))

	head := byName(t, torso, "TranslateHead")
	assert.Equal(t, []string{
		"ScaleHead",
		"TranslateEyeLeft",
		"TranslateEyeRight",
		"TranslateNose",
		"TranslateHatNode",
		"TranslateMouth",
	}, childNames(head))

	shoulder := byName(t, torso, "RotateUpperArmLeft")
	assert.Equal(t, []string{"TranslateUpperArmLeft", "TranslatePivotUpperLowerLeft"}, childNames(shoulder))
}

func TestBuildParameters(t *testing.T) {
	torso := Build(NewShapes())

	tests := []struct {
		name string
		want scenegraph.Params
	}{
		{"TranslateHead", scenegraph.Translate{X: 0, Y: 1}},
		{"ScaleHead", scenegraph.Scale{X: 0.75, Y: 0.75}},
		{"TranslateEyeRight", scenegraph.Translate{X: -0.175, Y: 0.15}},
		{"ScaleNose", scenegraph.Scale{X: 0.1, Y: 0.2}},
		{"RotateHatNode", scenegraph.Rotate{Degrees: 90}},
		{"RotateUpperArmLeft", scenegraph.Rotate{Degrees: -65}},
		{"RotateUpperArmRight", scenegraph.Rotate{Degrees: 65}},
		{"TranslatePivotUpperLowerRight", scenegraph.Translate{X: -0.8, Y: 0}},
		{"RotateLowerArmLeft", scenegraph.Rotate{Degrees: 0}},
		{"ScaleLowerArmRight", scenegraph.Scale{X: 0.8, Y: 0.2}},
		{"TranslateLegLeft", scenegraph.Translate{X: 0.25, Y: -1.25}},
		{"ScaleLegRight", scenegraph.Scale{X: 0.3, Y: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, byName(t, torso, tt.name).Params())
		})
	}
}

func TestBuildSharesGeometry(t *testing.T) {
	s := NewShapes()
	torso := Build(s)

	squares, triangles := 0, 0
	scenegraph.NewScene(torso).Walk(func(n *scenegraph.Node, _ int) bool {
		switch n.Geometry() {
		case s.Square:
			squares++
		case s.Triangle:
			triangles++
		case nil:
		default:
			t.Errorf("node %q references unexpected geometry", n.Name())
		}
		return true
	})
	assert.Equal(t, 12, squares)
	assert.Equal(t, 1, triangles)
	assert.Equal(t, scenegraph.Color{R: 1, G: 1}, byName(t, torso, "ScaleHatNode").Color())
}

func TestBuildTraversal(t *testing.T) {
	torso := Build(NewShapes())
	canvas := &countingCanvas{}

	stats := scenegraph.Traverse(torso, scenegraph.Identity(), canvas)

	assert.Equal(t, 34, stats.Visited)
	assert.Equal(t, 13, stats.DrawCalls)
	assert.Equal(t, 7, stats.MaxDepth)
	require.Len(t, canvas.fills, 13)
	assert.Equal(t, scenegraph.Color{G: 1}, canvas.fills[0], "torso draws first")
}

func TestUpperArmPlacement(t *testing.T) {
	torso := Build(NewShapes())
	arm := byName(t, torso, "ScaleUpperArmLeft")

	got := arm.LocalToWorld(scenegraph.Vec2{0, 0})
	rad := mgl64.DegToRad(65)
	want := scenegraph.Vec2{0.4 + 0.5*math.Cos(rad), 0.4 - 0.5*math.Sin(rad)}
	assert.True(t, want.ApproxEqualThreshold(got, 1e-9), "want %v, got %v", want, got)
}

func TestHatPointsUp(t *testing.T) {
	s := NewShapes()
	torso := Build(s)
	hat := byName(t, torso, "ScaleHatNode")

	tip := hat.LocalToWorld(s.Triangle.(*shape.Polygon).Points()[0])
	assert.InDelta(t, 0, tip.X(), 1e-9)
	assert.InDelta(t, 2.1, tip.Y(), 1e-9)
}

func TestBuildDoesNotIncludeGrid(t *testing.T) {
	s := NewShapes()
	torso := Build(s)
	scenegraph.NewScene(torso).Walk(func(n *scenegraph.Node, _ int) bool {
		assert.NotEqual(t, s.Grid, n.Geometry(), n.Name())
		return true
	})
}
