package scenegraph

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color is an RGB color with components in [0, 1]. The zero value is black,
// which is also the default color of every new node.
type Color struct {
	R, G, B float64
}

// Predefined colors used by the editor and the demo figure.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{1, 1, 1}
)

// NRGBA converts the color to an opaque 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: 255}
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Vec2 is a 2D point or direction.
type Vec2 = mgl64.Vec2

// NodeKind identifies which transform a node contributes.
type NodeKind uint8

const (
	KindGroup     NodeKind = iota // identity transform, used to group children
	KindTranslate                 // translation by (X, Y)
	KindRotate                    // counter-clockwise rotation in degrees
	KindScale                     // non-uniform scale by (X, Y)
)

func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindTranslate:
		return "translate"
	case KindRotate:
		return "rotate"
	case KindScale:
		return "scale"
	default:
		return "unknown"
	}
}
