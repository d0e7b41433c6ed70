package editor

import (
	"fmt"
	"strings"

	"github.com/phanxgames/scenegraph"
)

// Param names one editable number of a transform node.
type Param uint8

const (
	ParamTranslateX Param = iota + 1
	ParamTranslateY
	ParamRotation
	ParamScaleX
	ParamScaleY
)

var paramNames = map[Param]string{
	ParamTranslateX: "tx",
	ParamTranslateY: "ty",
	ParamRotation:   "rotation",
	ParamScaleX:     "sx",
	ParamScaleY:     "sy",
}

func (p Param) String() string {
	if s, ok := paramNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Param(%d)", uint8(p))
}

// ParseParam maps a name as printed by String back to its Param. Matching is
// case-insensitive.
func ParseParam(s string) (Param, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range paramNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownParam)
}

// ParamsFor lists the parameters a node of the given kind exposes, in panel
// order. Groups expose none.
func ParamsFor(kind scenegraph.NodeKind) []Param {
	switch kind {
	case scenegraph.KindTranslate:
		return []Param{ParamTranslateX, ParamTranslateY}
	case scenegraph.KindRotate:
		return []Param{ParamRotation}
	case scenegraph.KindScale:
		return []Param{ParamScaleX, ParamScaleY}
	default:
		return nil
	}
}

func apply(n *scenegraph.Node, p Param, v float64) error {
	switch p {
	case ParamTranslateX:
		return n.SetTranslateX(v)
	case ParamTranslateY:
		return n.SetTranslateY(v)
	case ParamRotation:
		return n.SetRotationDegrees(v)
	case ParamScaleX:
		return n.SetScaleX(v)
	case ParamScaleY:
		return n.SetScaleY(v)
	default:
		return ErrUnknownParam
	}
}

func value(n *scenegraph.Node, p Param) (float64, error) {
	switch params := n.Params().(type) {
	case scenegraph.Translate:
		switch p {
		case ParamTranslateX:
			return params.X, nil
		case ParamTranslateY:
			return params.Y, nil
		}
	case scenegraph.Rotate:
		if p == ParamRotation {
			return params.Degrees, nil
		}
	case scenegraph.Scale:
		switch p {
		case ParamScaleX:
			return params.X, nil
		case ParamScaleY:
			return params.Y, nil
		}
	}
	if _, ok := paramNames[p]; !ok {
		return 0, ErrUnknownParam
	}
	return 0, &scenegraph.KindError{Op: "read " + p.String(), Node: n.Name(), Want: kindOf(p), Have: n.Kind()}
}

func kindOf(p Param) scenegraph.NodeKind {
	switch p {
	case ParamTranslateX, ParamTranslateY:
		return scenegraph.KindTranslate
	case ParamRotation:
		return scenegraph.KindRotate
	case ParamScaleX, ParamScaleY:
		return scenegraph.KindScale
	default:
		return scenegraph.KindGroup
	}
}
