package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/phanxgames/scenegraph"
	"github.com/phanxgames/scenegraph/shape"
)

type fixture struct {
	scene  *scenegraph.Scene
	square *shape.Polygon
	ed     *Editor

	root, move, turn, size *scenegraph.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{square: shape.NewSquare()}
	f.root = scenegraph.NewGroup("root")
	f.move = f.root.AddChild(scenegraph.NewTranslate("move", 1, 2))
	f.turn = f.move.AddChild(scenegraph.NewRotate("turn", 30))
	f.size = f.turn.AddChild(scenegraph.NewScale("size", 2, 3))
	f.scene = scenegraph.NewScene(f.root)
	f.ed = New(f.scene, f.square, zaptest.NewLogger(t))
	return f
}

func TestSelect(t *testing.T) {
	f := newFixture(t)

	assert.Nil(t, f.ed.Selected())
	require.NoError(t, f.ed.Select(f.turn.Handle()))
	assert.Same(t, f.turn, f.ed.Selected())

	require.NoError(t, f.ed.Select(0))
	assert.Nil(t, f.ed.Selected())
}

func TestSelectUnknownHandle(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.move.Handle()))

	stray := scenegraph.NewTranslate("stray", 0, 0)
	err := f.ed.Select(stray.Handle())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Same(t, f.move, f.ed.Selected(), "selection unchanged")
}

func TestSelectByName(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.SelectByName("size"))
	assert.Same(t, f.size, f.ed.Selected())

	assert.ErrorIs(t, f.ed.SelectByName("missing"), ErrNotFound)
}

func TestSelectionDoesNotDangle(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.size.Handle()))

	f.scene.SetRoot(scenegraph.NewGroup("other"))
	assert.Nil(t, f.ed.Selected())
	assert.ErrorIs(t, f.ed.SetScaleX(1), ErrNoSelection)
}

func TestSettersWithoutSelection(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		call func() error
	}{
		{"SetTranslateX", func() error { return f.ed.SetTranslateX(1) }},
		{"SetTranslateY", func() error { return f.ed.SetTranslateY(1) }},
		{"SetRotation", func() error { return f.ed.SetRotation(1) }},
		{"SetScaleX", func() error { return f.ed.SetScaleX(1) }},
		{"SetScaleY", func() error { return f.ed.SetScaleY(1) }},
		{"SetColor", func() error { return f.ed.SetColor(scenegraph.ColorWhite) }},
		{"AssignSquare", func() error { return f.ed.AssignSquare() }},
		{"AddTranslate", func() error { _, err := f.ed.AddTranslate(); return err }},
		{"AddRotate", func() error { _, err := f.ed.AddRotate(); return err }},
		{"AddScale", func() error { _, err := f.ed.AddScale(); return err }},
		{"EaseTo", func() error { return f.ed.EaseTo(ParamRotation, 10, 1) }},
		{"Nudge", func() error { return f.ed.Nudge(ParamRotation, 10) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrNoSelection)
		})
	}
	assert.Zero(t, f.size.NumChildren(), "no nodes added")
	assert.False(t, f.ed.CanUndo())
}

func TestSetParameters(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ed.Select(f.move.Handle()))
	require.NoError(t, f.ed.SetTranslateX(-4))
	require.NoError(t, f.ed.SetTranslateY(0.5))
	assert.Equal(t, scenegraph.Translate{X: -4, Y: 0.5}, f.move.Params())

	require.NoError(t, f.ed.Select(f.turn.Handle()))
	require.NoError(t, f.ed.SetRotation(-65))
	assert.Equal(t, scenegraph.Rotate{Degrees: -65}, f.turn.Params())

	require.NoError(t, f.ed.Select(f.size.Handle()))
	require.NoError(t, f.ed.SetScaleX(0))
	require.NoError(t, f.ed.SetScaleY(0.25))
	assert.Equal(t, scenegraph.Scale{X: 0, Y: 0.25}, f.size.Params())

	v, err := f.ed.Value(ParamScaleY)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
}

func TestSetWrongKind(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.turn.Handle()))

	err := f.ed.SetTranslateX(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scenegraph.ErrWrongNodeKind))

	var kerr *scenegraph.KindError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, scenegraph.KindTranslate, kerr.Want)
	assert.Equal(t, scenegraph.KindRotate, kerr.Have)

	assert.Equal(t, scenegraph.Rotate{Degrees: 30}, f.turn.Params())
	assert.False(t, f.ed.CanUndo(), "rejected edits are not recorded")

	_, err = f.ed.Value(ParamScaleX)
	assert.ErrorIs(t, err, scenegraph.ErrWrongNodeKind)
}

func TestSetUnknownParam(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.move.Handle()))
	assert.ErrorIs(t, f.ed.Set(Param(99), 1), ErrUnknownParam)
	_, err := f.ed.Add(scenegraph.KindGroup)
	assert.ErrorIs(t, err, ErrUnknownParam)
}

func TestAddNodes(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.size.Handle()))

	th, err := f.ed.AddTranslate()
	require.NoError(t, err)
	rh, err := f.ed.AddRotate()
	require.NoError(t, err)
	sh, err := f.ed.AddScale()
	require.NoError(t, err)

	require.Equal(t, 3, f.size.NumChildren())
	tests := []struct {
		h      scenegraph.Handle
		name   string
		params scenegraph.Params
	}{
		{th, NewTranslateName, scenegraph.Translate{}},
		{rh, NewRotateName, scenegraph.Rotate{}},
		{sh, NewScaleName, scenegraph.Scale{}},
	}
	for i, tt := range tests {
		n := f.scene.Find(tt.h)
		require.NotNil(t, n)
		assert.Same(t, f.size.ChildAt(i), n)
		assert.Equal(t, tt.name, n.Name())
		assert.Equal(t, tt.params, n.Params())
		assert.Equal(t, scenegraph.ColorBlack, n.Color())
		assert.Nil(t, n.Geometry())
	}
	assert.Same(t, f.size, f.ed.Selected(), "selection stays on the parent")
}

func TestAssignSquareAndColor(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.size.Handle()))

	require.NoError(t, f.ed.AssignSquare())
	require.NoError(t, f.ed.SetColor(scenegraph.Color{R: 1}))

	assert.Same(t, f.square, f.size.Geometry())
	assert.Equal(t, scenegraph.Color{R: 1}, f.size.Color())
}

func TestUndo(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.size.Handle()))

	require.NoError(t, f.ed.SetScaleX(5))
	require.NoError(t, f.ed.SetColor(scenegraph.Color{B: 1}))
	require.NoError(t, f.ed.AssignSquare())

	require.NoError(t, f.ed.Undo())
	assert.Nil(t, f.size.Geometry())
	assert.Equal(t, scenegraph.Color{B: 1}, f.size.Color())

	require.NoError(t, f.ed.Undo())
	assert.Equal(t, scenegraph.ColorBlack, f.size.Color())
	assert.Equal(t, scenegraph.Scale{X: 5, Y: 3}, f.size.Params())

	require.NoError(t, f.ed.Undo())
	assert.Equal(t, scenegraph.Scale{X: 2, Y: 3}, f.size.Params())

	assert.ErrorIs(t, f.ed.Undo(), ErrNotUndoable)
}

func TestUndoAcrossSelections(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.move.Handle()))
	require.NoError(t, f.ed.SetTranslateX(9))
	require.NoError(t, f.ed.Select(f.turn.Handle()))

	require.NoError(t, f.ed.Undo())
	assert.Equal(t, scenegraph.Translate{X: 1, Y: 2}, f.move.Params())
	assert.Same(t, f.turn, f.ed.Selected())
}

func TestUndoSkipsAdds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.size.Handle()))
	_, err := f.ed.AddRotate()
	require.NoError(t, err)

	assert.ErrorIs(t, f.ed.Undo(), ErrNotUndoable)
	assert.Equal(t, 1, f.size.NumChildren())
}

func TestUndoAfterNodeLeftScene(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ed.Select(f.turn.Handle()))
	require.NoError(t, f.ed.SetRotation(1))

	f.scene.SetRoot(scenegraph.NewGroup("other"))
	assert.ErrorIs(t, f.ed.Undo(), ErrNotUndoable)
}

func TestEditsNotifyObserver(t *testing.T) {
	f := newFixture(t)
	outline := NewOutline(f.scene)
	f.scene.SetObserver(outline)
	require.NoError(t, f.ed.Select(f.turn.Handle()))

	require.NoError(t, f.ed.SetRotation(45))
	assert.Equal(t, "turn  rotate(45°)", outline.Rows()[2].Label)

	_, err := f.ed.AddScale()
	require.NoError(t, err)
	assert.Equal(t, 5, outline.Len())
}

func TestParseParam(t *testing.T) {
	for _, p := range []Param{ParamTranslateX, ParamTranslateY, ParamRotation, ParamScaleX, ParamScaleY} {
		got, err := ParseParam(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParseParam(" Rotation ")
	require.NoError(t, err)
	assert.Equal(t, ParamRotation, got)

	_, err = ParseParam("alpha")
	assert.ErrorIs(t, err, ErrUnknownParam)
	assert.Equal(t, "Param(42)", Param(42).String())
}

func TestParamsFor(t *testing.T) {
	assert.Equal(t, []Param{ParamTranslateX, ParamTranslateY}, ParamsFor(scenegraph.KindTranslate))
	assert.Equal(t, []Param{ParamRotation}, ParamsFor(scenegraph.KindRotate))
	assert.Equal(t, []Param{ParamScaleX, ParamScaleY}, ParamsFor(scenegraph.KindScale))
	assert.Empty(t, ParamsFor(scenegraph.KindGroup))
}
