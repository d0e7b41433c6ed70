package scenegraph

// Canvas is the draw context geometry renders into. Points are in root
// (world) space; the canvas owns any further view transform.
type Canvas interface {
	FillPolygon(points []Vec2, c Color)
	StrokeLine(a, b Vec2, c Color)
}

// Geometry is shared drawable data referenced by nodes. Its color is a
// transient draw attribute: traversal calls SetColor immediately before each
// Draw, so geometry shared by many nodes must be drawn sequentially.
type Geometry interface {
	SetColor(c Color)
	Draw(canvas Canvas, model Matrix)
}

// Disposer is implemented by geometry that can report it was released. In
// debug mode traversal panics when it meets a disposed geometry instead of
// drawing through a dangling reference.
type Disposer interface {
	Disposed() bool
}

// Hitter is implemented by geometry that supports picking. p is in the
// geometry's local frame.
type Hitter interface {
	Contains(p Vec2) bool
}
