// Package figure builds the demonstration scene: a humanoid made of shared
// squares and a triangle hat, with two-joint arms.
package figure

import (
	"github.com/phanxgames/scenegraph"
	"github.com/phanxgames/scenegraph/shape"
)

// Shapes bundles the shared geometry the figure references. The caller owns
// it and must keep it alive for as long as the figure is drawn.
type Shapes struct {
	Square   scenegraph.Geometry
	Triangle scenegraph.Geometry
	Grid     scenegraph.Geometry // background, drawn by the render loop
}

// NewShapes creates the unit square, the triangle and a 5-unit grid.
func NewShapes() Shapes {
	return Shapes{
		Square:   shape.NewSquare(),
		Triangle: shape.NewRegularPolygon(3),
		Grid:     shape.NewGrid(5),
	}
}

var (
	green  = scenegraph.Color{G: 1}
	blue   = scenegraph.Color{B: 1}
	purple = scenegraph.Color{R: 0.5, B: 0.5}
	yellow = scenegraph.Color{R: 1, G: 1}
	white  = scenegraph.ColorWhite
	pink   = scenegraph.Color{R: 1, G: 0.71, B: 0.75}
	red    = scenegraph.Color{R: 1}
)

// Build constructs the figure and returns its root, the torso. Units match a
// view spanning -5..5; the torso is a unit square at the origin.
func Build(s Shapes) *scenegraph.Node {
	torso := scenegraph.NewTranslate("TorsoT", 0, 0)
	torso.SetColor(green)
	torso.SetGeometry(s.Square)

	addArm(torso, s, "Left", 1)
	addArm(torso, s, "Right", -1)
	addHead(torso, s)

	addLeg(torso, s, "TranslateLegLeft", "ScaleLegLeft", 0.25)
	addLeg(torso, s, "TranslateLegRight", "ScaleLegRight", -0.25)

	return torso
}

// addArm attaches a shoulder pivot with an upper arm and, at its far end, an
// elbow pivot with a lower arm. side is +1 for the arm on +x, -1 otherwise.
//
//	pivot(T) -> shoulder(R) -> upper(T) -> upper(S)
//	                        -> elbow(T) -> forearm(R) -> lower(T) -> lower(S)
func addArm(torso *scenegraph.Node, s Shapes, side string, dir float64) {
	pivot := torso.AddChild(scenegraph.NewTranslate("TranslatePivotTorsoArm"+side, dir*0.4, 0.4))
	shoulder := pivot.AddChild(scenegraph.NewRotate("RotateUpperArm"+side, -dir*65))

	upper := shoulder.AddChild(scenegraph.NewTranslate("TranslateUpperArm"+side, dir*0.5, 0))
	upperScale := upper.AddChild(scenegraph.NewScale("ScaleUpperArm"+side, 0.8, 0.2))
	upperScale.SetGeometry(s.Square)
	upperScale.SetColor(purple)

	elbow := shoulder.AddChild(scenegraph.NewTranslate("TranslatePivotUpperLower"+side, dir*0.8, 0))
	forearm := elbow.AddChild(scenegraph.NewRotate("RotateLowerArm"+side, 0))
	lower := forearm.AddChild(scenegraph.NewTranslate("TranslateLowerArm"+side, dir*0.4, 0))
	lowerScale := lower.AddChild(scenegraph.NewScale("ScaleLowerArm"+side, 0.8, 0.2))
	lowerScale.SetGeometry(s.Square)
	lowerScale.SetColor(blue)
}

func addHead(torso *scenegraph.Node, s Shapes) {
	head := torso.AddChild(scenegraph.NewTranslate("TranslateHead", 0, 1))

	face := head.AddChild(scenegraph.NewScale("ScaleHead", 0.75, 0.75))
	face.SetGeometry(s.Square)
	face.SetColor(blue)

	feature(head, s.Square, "TranslateEyeLeft", 0.175, 0.15, "ScaleEyeLeft", 0.1, 0.1, white)
	feature(head, s.Square, "TranslateEyeRight", -0.175, 0.15, "ScaleEyeRight", 0.1, 0.1, white)
	feature(head, s.Square, "TranslateNose", 0, 0.09, "ScaleNose", 0.1, 0.2, pink)

	hat := head.AddChild(scenegraph.NewTranslate("TranslateHatNode", 0, 0.6))
	tilt := hat.AddChild(scenegraph.NewRotate("RotateHatNode", 90))
	brim := tilt.AddChild(scenegraph.NewScale("ScaleHatNode", 1, 1))
	brim.SetGeometry(s.Triangle)
	brim.SetColor(yellow)

	feature(head, s.Square, "TranslateMouth", 0, -0.15, "ScaleMouth", 0.3, 0.1, red)
}

func addLeg(torso *scenegraph.Node, s Shapes, tName, sName string, x float64) {
	leg := torso.AddChild(scenegraph.NewTranslate(tName, x, -1.25))
	scale := leg.AddChild(scenegraph.NewScale(sName, 0.3, 1.5))
	scale.SetGeometry(s.Square)
	scale.SetColor(blue)
}

// feature adds a translate -> scale pair drawing geometry in color.
func feature(parent *scenegraph.Node, g scenegraph.Geometry, tName string, tx, ty float64, sName string, sx, sy float64, c scenegraph.Color) {
	t := parent.AddChild(scenegraph.NewTranslate(tName, tx, ty))
	sc := t.AddChild(scenegraph.NewScale(sName, sx, sy))
	sc.SetGeometry(g)
	sc.SetColor(c)
}
