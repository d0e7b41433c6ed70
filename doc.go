// Package scenegraph is a 2D transform hierarchy for drawing shared geometry.
//
// Every element is a [Node]. A node contributes one local transform, chosen by
// its kind: [Group] (identity), [Translate], [Rotate] (degrees,
// counter-clockwise) or [Scale]. Nodes form a tree; a child's transform is
// expressed in its parent's frame, so the matrix that places a node's
// geometry is the product of every ancestor's local transform, root first.
//
// # Building a tree
//
// Create nodes with the typed constructors and attach them with
// [Node.AddChild], which returns the inserted child for further setup:
//
//	square := shape.NewSquare()
//	torso := scenegraph.NewTranslate("torso", 0, 0)
//	torso.SetGeometry(square)
//	torso.SetColor(scenegraph.Color{G: 1})
//
//	arm := torso.AddChild(scenegraph.NewRotate("shoulder", -65))
//	arm.AddChild(scenegraph.NewScale("upper arm", 0.8, 0.2)).SetGeometry(square)
//
// Geometry is referenced, never owned: one square can be drawn by any number
// of nodes, each with its own color and matrix.
//
// # Drawing
//
// Wrap the root in a [Scene] and call [Scene.Draw] once per frame with a
// [Canvas]. Drawing is a depth-first, pre-order traversal: a node's geometry
// is drawn before its children, and children are drawn in insertion order.
//
// # Editing
//
// Kind-specific setters such as [Node.SetRotationDegrees] return an error
// matching [ErrWrongNodeKind] when called on a node of another kind, and leave
// the node unchanged. Editors keep a [Handle] rather than a pointer to the
// selected node and resolve it with [Scene.Find]. Display adapters mirror the
// tree through an [Observer].
//
// A scene graph is single-threaded: mutate it only between frames, on the
// goroutine that draws it.
package scenegraph
