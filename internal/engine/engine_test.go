package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/interaction"
	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
	"github.com/inamate/wireframe/backend-go/internal/typeid"
)

type fixture struct {
	editor  *Editor
	a, b, c string
}

// newFixture adds a rectangle at (0,0)-(100,60), a button at
// (150,0)-(250,30) and a checkbox at (0,100)-(104,136).
func newFixture(t *testing.T) fixture {
	t.Helper()
	e := NewEditor(renderer.NewDefaultService(), Config{PasteOffset: 10}, nil)
	t.Cleanup(e.Close)

	f := fixture{editor: e}
	var err error
	f.a, err = e.AddShape(renderer.RectangleRenderer, geom.V(50, 30))
	require.NoError(t, err)
	f.b, err = e.AddShape(renderer.ButtonRenderer, geom.V(200, 15))
	require.NoError(t, err)
	f.c, err = e.AddShape(renderer.CheckboxRenderer, geom.V(52, 118))
	require.NoError(t, err)
	return f
}

func (f fixture) group(t *testing.T) string {
	t.Helper()
	require.NoError(t, f.editor.SelectItems(nil, []string{f.a, f.b}))
	id, err := f.editor.GroupSelection()
	require.NoError(t, err)
	return id
}

func shapeAt(t *testing.T, d *model.Diagram, id string) *model.Shape {
	t.Helper()
	item, ok := d.Item(id)
	require.True(t, ok)
	shape, ok := item.(*model.Shape)
	require.True(t, ok)
	return shape
}

func TestAddShape(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	assert.Equal(t, typeid.PrefixShape, typeid.Prefix(f.c))
	assert.Equal(t, []string{f.c}, e.Selection())
	assert.Equal(t, geom.NewRect2(0, 100, 104, 36), shapeAt(t, e.Diagram(), f.c).Transform().Aabb())

	before := e.Diagram()
	_, err := e.AddShape("Slider", geom.Zero)
	assert.ErrorIs(t, err, renderer.ErrNotFound)
	assert.Same(t, before, e.Diagram())
}

func TestEditsLeaveOldDiagramUntouched(t *testing.T) {
	f := newFixture(t)
	before := f.editor.Diagram()

	f.group(t)
	assert.Equal(t, 3, before.Len())
	assert.Equal(t, []string{f.a, f.b, f.c}, before.RootIDs())
	assert.Equal(t, 4, f.editor.Diagram().Len())
}

func TestSelectItems(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	require.NoError(t, e.SelectItems(e.Diagram(), []string{f.a, "missing", f.a}))
	assert.Equal(t, []string{f.a}, e.Selection())
	assert.Len(t, e.SelectedItems(), 1)

	err := e.SelectItems(model.Empty("other"), []string{f.b})
	assert.ErrorIs(t, err, ErrDiagramMismatch)
	assert.Equal(t, []string{f.a}, e.Selection())
}

func TestGroupAndUngroupSelection(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	g := f.group(t)
	assert.Equal(t, typeid.PrefixGroup, typeid.Prefix(g))
	assert.Equal(t, []string{g}, e.Selection())
	assert.Equal(t, []string{g, f.c}, e.Diagram().RootIDs())

	require.NoError(t, e.UngroupSelection())
	assert.Equal(t, []string{f.a, f.b}, e.Selection())
	assert.Equal(t, []string{f.a, f.b, f.c}, e.Diagram().RootIDs())

	require.NoError(t, e.SelectItems(nil, []string{f.c}))
	assert.ErrorIs(t, e.UngroupSelection(), model.ErrInvalidGrouping)
}

func TestEmptySelection(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	require.NoError(t, e.SelectItems(nil, nil))

	_, err := e.GroupSelection()
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.ErrorIs(t, e.RemoveSelection(), ErrEmptySelection)
	assert.ErrorIs(t, e.MoveSelection(geom.V(1, 1)), ErrEmptySelection)
	_, err = e.Copy()
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, ok := e.SelectionBounds()
	assert.False(t, ok)
}

func TestRemoveSelection(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	g := f.group(t)

	require.NoError(t, e.SelectItems(nil, []string{f.a}))
	require.NoError(t, e.RemoveSelection())

	d := e.Diagram()
	assert.False(t, d.Contains(f.a))
	parent, ok := d.Parent(f.b)
	require.True(t, ok)
	assert.Equal(t, g, parent.ID())
	assert.Empty(t, e.Selection())
	assert.NoError(t, d.Validate())
}

func TestReorderSelection(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	require.NoError(t, e.SelectItems(nil, []string{f.c}))
	require.NoError(t, e.Reorder(model.SendToBack))
	assert.Equal(t, []string{f.c, f.a, f.b}, e.Diagram().RootIDs())
	assert.Equal(t, []string{f.c}, e.Selection())
}

func TestMoveSelection(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	f.group(t)

	require.NoError(t, e.MoveSelection(geom.V(5, 5)))

	d := e.Diagram()
	assert.Equal(t, geom.V(55, 35), shapeAt(t, d, f.a).Transform().Position)
	assert.Equal(t, geom.V(205, 20), shapeAt(t, d, f.b).Transform().Position)
	assert.Equal(t, geom.V(52, 118), shapeAt(t, d, f.c).Transform().Position)

	bounds, ok := e.SelectionBounds()
	require.True(t, ok)
	assert.Equal(t, geom.NewRect2(5, 5, 250, 60), bounds.Rect())
}

func TestTransformSelection(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	require.NoError(t, e.SelectItems(nil, []string{f.a}))

	target := geom.NewTransform(geom.V(100, 60), geom.V(200, 120), 0)
	require.NoError(t, e.TransformSelection(target))
	assert.True(t, shapeAt(t, e.Diagram(), f.a).Transform().Equals(target))
}

func TestUpdateAppearance(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	require.NoError(t, e.SelectItems(nil, []string{f.b}))

	require.NoError(t, e.UpdateAppearance(renderer.AppearanceFontSize, 20))
	size, _ := shapeAt(t, e.Diagram(), f.b).AppearanceValue(renderer.AppearanceFontSize)
	assert.Equal(t, 20.0, size)

	before := e.Diagram()
	assert.ErrorIs(t, e.UpdateAppearance(renderer.AppearanceFontSize, 1000), model.ErrInvalidValue)
	assert.Same(t, before, e.Diagram())
}

func TestCopyPaste(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	g := f.group(t)

	doc, err := e.Copy()
	require.NoError(t, err)
	assert.Len(t, doc.Visuals, 2)
	assert.Len(t, doc.Groups, 1)

	pasted, err := e.Paste(doc)
	require.NoError(t, err)
	require.Len(t, pasted, 1)
	assert.NotEqual(t, g, pasted[0])
	assert.Equal(t, pasted, e.Selection())

	d := e.Diagram()
	assert.Equal(t, 7, d.Len())
	assert.NoError(t, d.Validate())

	item, ok := d.Item(pasted[0])
	require.True(t, ok)
	group, ok := item.(*model.Group)
	require.True(t, ok)
	first := shapeAt(t, d, group.ChildAt(0))
	assert.NotEqual(t, f.a, first.ID())
	assert.Equal(t, geom.V(60, 40), first.Transform().Position)
	assert.Equal(t, renderer.RectangleRenderer, first.Renderer())

	// Pasting the same clipboard twice never collides.
	_, err = e.Paste(doc)
	require.NoError(t, err)
	assert.Equal(t, 10, e.Diagram().Len())
}

func TestCutAndDuplicate(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	require.NoError(t, e.SelectItems(nil, []string{f.c}))
	ids, err := e.Duplicate()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.NotEqual(t, f.c, ids[0])
	assert.Equal(t, 4, e.Diagram().Len())

	require.NoError(t, e.SelectItems(nil, []string{f.c}))
	doc, err := e.Cut()
	require.NoError(t, err)
	assert.Equal(t, []string{f.c}, doc.IDs())
	assert.False(t, e.Diagram().Contains(f.c))
	assert.Empty(t, e.Selection())
}

func TestLoadAndExport(t *testing.T) {
	e := NewEditor(renderer.NewDefaultService(), Config{}, nil)
	t.Cleanup(e.Close)

	require.NoError(t, e.LoadSample())
	d := e.Diagram()
	assert.Equal(t, 5, d.Len())
	assert.NoError(t, d.Validate())

	doc, err := e.Export()
	require.NoError(t, err)
	assert.Len(t, doc.Visuals, 4)
	assert.Len(t, doc.Groups, 1)

	for _, id := range doc.IDs() {
		assert.True(t, d.Contains(id), id)
	}

	bad := &serializer.Document{Visuals: []serializer.Visual{{ID: "x", Renderer: "Slider"}}}
	assert.ErrorIs(t, e.Load(bad), renderer.ErrNotFound)
	assert.Same(t, d, e.Diagram())
}

func TestHitTest(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	f.group(t)

	hit := e.HitTest(geom.V(50, 30))
	require.NotNil(t, hit)
	assert.Equal(t, f.a, hit.ID())

	hit = e.HitTest(geom.V(104, 136))
	require.NotNil(t, hit)
	assert.Equal(t, f.c, hit.ID())

	assert.Nil(t, e.HitTest(geom.V(500, 500)))

	top, err := e.AddShape(renderer.RectangleRenderer, geom.V(60, 30))
	require.NoError(t, err)
	assert.Equal(t, top, e.HitTest(geom.V(55, 30)).ID())
}

func TestHitTestRotatedShape(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	id, err := e.AddShape(renderer.RectangleRenderer, geom.V(300, 300))
	require.NoError(t, err)
	bounds, ok := e.SelectionBounds()
	require.True(t, ok)
	require.NoError(t, e.TransformSelection(bounds.RotateBy(geom.Degrees(45))))

	assert.Equal(t, id, e.HitTest(geom.V(340, 300)).ID())
	assert.Nil(t, e.HitTest(geom.V(350, 250)))
}

func TestPointerSelection(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	g := f.group(t)
	require.NoError(t, e.SelectItems(nil, nil))

	require.NoError(t, e.MouseDown(PointerEvent{Position: geom.V(50, 30)}))
	assert.Equal(t, []string{g}, e.Selection())
	assert.False(t, e.Dragging())
	require.NoError(t, e.MouseUp(PointerEvent{Position: geom.V(50, 30)}))

	require.NoError(t, e.MouseDown(PointerEvent{Position: geom.V(-10, -10)}))
	assert.Empty(t, e.Selection())
	assert.True(t, e.Dragging())

	require.NoError(t, e.MouseDrag(PointerEvent{Position: geom.V(300, 200)}))
	commands := e.Render()
	last := commands[len(commands)-1]
	assert.Equal(t, OpDragRect, last.Op)
	assert.Equal(t, 310.0, last.Width)

	require.NoError(t, e.MouseUp(PointerEvent{Position: geom.V(300, 200)}))
	assert.Equal(t, []string{g, f.c}, e.Selection())
	assert.False(t, e.Dragging())
}

func TestPointerWithItemID(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	require.NoError(t, e.SelectItems(nil, []string{f.a}))

	ev := PointerEvent{Position: geom.V(200, 15), ItemID: f.b, Modifiers: interaction.ModCtrl}
	require.NoError(t, e.MouseDown(ev))
	assert.Equal(t, []string{f.a, f.b}, e.Selection())
}

func TestRender(t *testing.T) {
	f := newFixture(t)
	e := f.editor
	g := f.group(t)
	require.NoError(t, e.SelectItems(nil, []string{g, f.c}))

	commands := e.Render()
	require.Len(t, commands, 5)

	ops := make([]string, len(commands))
	for i, cmd := range commands {
		ops[i] = cmd.Op
	}
	assert.Equal(t, []string{OpShape, OpShape, OpShape, OpSelection, OpSelection}, ops)

	shape := commands[1]
	assert.Equal(t, f.b, shape.ObjectID)
	assert.Equal(t, renderer.ButtonRenderer, shape.Renderer)
	assert.Equal(t, 150.0, shape.X)
	assert.Equal(t, 100.0, shape.Width)
	assert.Equal(t, "Button", shape.Appearance[renderer.AppearanceText])
	assert.Equal(t, []float64{1, 0, 0, 1, 150, 0}, shape.Transform)

	marker := commands[3]
	assert.Equal(t, 250.0, marker.Width)
	assert.NotEmpty(t, marker.Stroke)

	require.NoError(t, e.SelectItems(nil, nil))
	assert.Len(t, e.Render(), 3)
}

func TestDrawCommandsToJSON(t *testing.T) {
	out, err := DrawCommandsToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = DrawCommandsToJSON([]DrawCommand{{Op: OpShape, ObjectID: "a", Transform: []float64{1, 0, 0, 1, 0, 0}}})
	require.NoError(t, err)
	assert.Contains(t, out, `"objectId":"a"`)
}
