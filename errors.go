package scenegraph

import (
	"errors"
	"fmt"
)

// ErrWrongNodeKind is returned when a kind-specific setter is called on a node
// of a different kind. Use errors.Is to test for it; the concrete error is a
// *KindError.
var ErrWrongNodeKind = errors.New("scenegraph: wrong node kind")

// KindError describes a rejected kind-specific mutation. The node is left
// unchanged when one is returned.
type KindError struct {
	Op   string   // setter that was called, e.g. "SetRotationDegrees"
	Node string   // name of the node
	Want NodeKind // kind the setter requires
	Have NodeKind // kind of the node
}

func (e *KindError) Error() string {
	return fmt.Sprintf("scenegraph: %s on %s node %q (requires %s)", e.Op, e.Have, e.Node, e.Want)
}

// Unwrap lets errors.Is match ErrWrongNodeKind.
func (e *KindError) Unwrap() error {
	return ErrWrongNodeKind
}
