package scenegraph

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Params is the closed set of per-kind transform parameters. The unexported
// marker method restricts implementations to this package, so a type switch
// over Group, Translate, Rotate and Scale is exhaustive.
type Params interface {
	// Kind reports which variant the parameters belong to.
	Kind() NodeKind
	// Local returns the local transform the parameters describe.
	Local() Matrix

	params()
}

// Group contributes the identity transform.
type Group struct{}

// Translate moves points by (X, Y).
type Translate struct {
	X, Y float64
}

// Rotate turns points counter-clockwise about the origin. The angle is stored
// in degrees and converted to radians only when the matrix is built.
type Rotate struct {
	Degrees float64
}

// Scale multiplies x by X and y by Y. Zero factors are legal and collapse
// geometry onto an axis or a point.
type Scale struct {
	X, Y float64
}

func (Group) Kind() NodeKind     { return KindGroup }
func (Translate) Kind() NodeKind { return KindTranslate }
func (Rotate) Kind() NodeKind    { return KindRotate }
func (Scale) Kind() NodeKind     { return KindScale }

func (Group) Local() Matrix { return mgl64.Ident3() }

func (p Translate) Local() Matrix { return mgl64.Translate2D(p.X, p.Y) }

func (p Rotate) Local() Matrix { return mgl64.HomogRotate2D(mgl64.DegToRad(p.Degrees)) }

func (p Scale) Local() Matrix { return mgl64.Scale2D(p.X, p.Y) }

func (Group) params()     {}
func (Translate) params() {}
func (Rotate) params()    {}
func (Scale) params()     {}

func (Group) String() string       { return "group" }
func (p Translate) String() string { return fmt.Sprintf("translate(%g, %g)", p.X, p.Y) }
func (p Rotate) String() string    { return fmt.Sprintf("rotate(%g°)", p.Degrees) }
func (p Scale) String() string     { return fmt.Sprintf("scale(%g, %g)", p.X, p.Y) }

// valueOf dereferences pointer variants, which satisfy Params through the
// value methods, so a node only ever stores values. A nil pointer yields nil.
func valueOf(p Params) Params {
	switch v := p.(type) {
	case *Group:
		if v == nil {
			return nil
		}
		return *v
	case *Translate:
		if v == nil {
			return nil
		}
		return *v
	case *Rotate:
		if v == nil {
			return nil
		}
		return *v
	case *Scale:
		if v == nil {
			return nil
		}
		return *v
	}
	return p
}
