// Package engine holds the editing state of one open diagram and exposes the
// edit, clipboard, hit test and render operations the frontends call.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/interaction"
	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
	"github.com/inamate/wireframe/backend-go/internal/typeid"
)

var (
	ErrEmptySelection  = errors.New("nothing selected")
	ErrDiagramMismatch = errors.New("diagram is not the current diagram")
)

type Config struct {
	// DragThreshold is the squared distance a drag must cover to select.
	DragThreshold float64
	// PasteOffset is added to both coordinates of pasted shapes.
	PasteOffset float64
}

// state is the unit swapped on every edit. Both fields are immutable.
type state struct {
	diagram   *model.Diagram
	selection []string
}

// Editor owns the current diagram and selection. Readers may call Diagram,
// Selection and Snapshot from any goroutine; edits and pointer events are
// expected from one goroutine at a time.
type Editor struct {
	renderers  *renderer.Service
	serializer *serializer.Serializer
	cfg        Config
	log        *slog.Logger

	current atomic.Pointer[state]

	interactions *interaction.Service
	adorner      *interaction.SelectionAdorner
	overlays     *overlayCanvas
}

// NewEditor creates an editor showing an empty diagram.
func NewEditor(renderers *renderer.Service, cfg Config, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	e := &Editor{
		renderers:    renderers,
		serializer:   serializer.New(renderers),
		cfg:          cfg,
		log:          log,
		interactions: interaction.NewService(),
		overlays:     &overlayCanvas{},
	}
	e.current.Store(&state{diagram: model.Empty(typeid.NewDiagramID()), selection: []string{}})

	e.adorner = interaction.NewSelectionAdorner(e.interactions, e, cfg.DragThreshold)
	e.adorner.Attach(e.overlays)
	return e
}

// Close detaches the selection adorner from the editor's interaction
// service.
func (e *Editor) Close() {
	e.adorner.Detach()
}

// --- State ---

func (e *Editor) Diagram() *model.Diagram { return e.current.Load().diagram }

func (e *Editor) Selection() []string { return slices.Clone(e.current.Load().selection) }

// Snapshot returns a diagram and the selection made on it.
func (e *Editor) Snapshot() (*model.Diagram, []string) {
	s := e.current.Load()
	return s.diagram, slices.Clone(s.selection)
}

// SelectedItems resolves the selection against the current diagram.
func (e *Editor) SelectedItems() []model.DiagramItem {
	s := e.current.Load()
	items := make([]model.DiagramItem, 0, len(s.selection))
	for _, id := range s.selection {
		if item, ok := s.diagram.Item(id); ok {
			items = append(items, item)
		}
	}
	return items
}

// update applies fn to the current state and installs the result. It
// retries when another writer swapped the state in between.
func (e *Editor) update(fn func(cur *state) (*state, error)) error {
	for {
		cur := e.current.Load()
		next, err := fn(cur)
		if err != nil {
			return err
		}
		if e.current.CompareAndSwap(cur, next) {
			return nil
		}
	}
}

// edit applies a diagram edit and replaces the selection.
func (e *Editor) edit(fn func(d *model.Diagram, selection []string) (*model.Diagram, []string, error)) error {
	return e.update(func(cur *state) (*state, error) {
		d, selection, err := fn(cur.diagram, slices.Clone(cur.selection))
		if err != nil {
			return nil, err
		}
		return &state{diagram: d, selection: filterSelection(d, selection)}, nil
	})
}

// editSelection is edit for operations that need a non-empty selection.
func (e *Editor) editSelection(fn func(d *model.Diagram, selection []string) (*model.Diagram, []string, error)) error {
	return e.edit(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		if len(selection) == 0 {
			return nil, nil, ErrEmptySelection
		}
		return fn(d, selection)
	})
}

// filterSelection drops unknown and repeated ids.
func filterSelection(d *model.Diagram, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if d.Contains(id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// --- Documents ---

// Load replaces the diagram with the items of doc. Nothing changes if the
// document cannot be imported.
func (e *Editor) Load(doc *serializer.Document) error {
	set, err := e.serializer.DeserializeSet(doc)
	if err != nil {
		return err
	}
	d, err := model.Empty(typeid.NewDiagramID()).AddItemSet(set)
	if err != nil {
		return err
	}

	e.current.Store(&state{diagram: d, selection: []string{}})
	e.log.Debug("diagram loaded", "diagram", d.ID(), "items", d.Len())
	return nil
}

// LoadSample loads the built-in sample wireframe.
func (e *Editor) LoadSample() error {
	return e.Load(SampleDocument())
}

// Export serializes the whole diagram.
func (e *Editor) Export() (*serializer.Document, error) {
	return e.serializer.SerializeDiagram(e.Diagram())
}

// --- Selection ---

// SelectItems selects ids on d, which must be the current diagram. Unknown
// ids are dropped.
func (e *Editor) SelectItems(d *model.Diagram, ids []string) error {
	return e.update(func(cur *state) (*state, error) {
		if d != nil && d.ID() != cur.diagram.ID() {
			return nil, fmt.Errorf("%w: %s", ErrDiagramMismatch, d.ID())
		}
		return &state{diagram: cur.diagram, selection: filterSelection(cur.diagram, ids)}, nil
	})
}

// SelectionBounds returns the bounds of the selected items. A single item
// keeps its rotation.
func (e *Editor) SelectionBounds() (geom.Transform, bool) {
	d, selection := e.Snapshot()
	return selectionBounds(d, selection)
}

func selectionBounds(d *model.Diagram, ids []string) (geom.Transform, bool) {
	var bounds []geom.Transform
	for _, id := range ids {
		if item, ok := d.Item(id); ok {
			bounds = append(bounds, item.Bounds(d))
		}
	}
	switch len(bounds) {
	case 0:
		return geom.ZeroTransform, false
	case 1:
		return bounds[0], true
	default:
		return geom.CreateFromTransformsAndRotation(bounds, 0), true
	}
}

// --- Edits ---

// AddShape adds a default shape of the given renderer centered at position
// and selects it.
func (e *Editor) AddShape(rendererKey string, position geom.Vec2) (string, error) {
	plugin, err := e.renderers.RegisteredRenderer(rendererKey)
	if err != nil {
		return "", err
	}
	shape := plugin.CreateDefaultShape(typeid.NewShapeID()).TransformWith(func(t geom.Transform) geom.Transform {
		return t.MoveTo(position)
	})

	err = e.edit(func(d *model.Diagram, _ []string) (*model.Diagram, []string, error) {
		next, err := d.AddVisual(shape)
		return next, []string{shape.ID()}, err
	})
	if err != nil {
		return "", err
	}
	return shape.ID(), nil
}

// GroupSelection groups the selected items and selects the new group.
func (e *Editor) GroupSelection() (string, error) {
	groupID := typeid.NewGroupID()
	err := e.editSelection(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		next, err := d.Group(groupID, selection)
		return next, []string{groupID}, err
	})
	if err != nil {
		return "", err
	}
	return groupID, nil
}

// UngroupSelection dissolves every selected group and selects its former
// children together with the selected non-group items.
func (e *Editor) UngroupSelection() error {
	return e.editSelection(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		var next []string
		ungrouped := false
		for _, id := range selection {
			item, _ := d.Item(id)
			g, ok := item.(*model.Group)
			if !ok {
				next = append(next, id)
				continue
			}
			var err error
			if d, err = d.Ungroup(id); err != nil {
				return nil, nil, err
			}
			next = append(next, g.ChildIDs()...)
			ungrouped = true
		}
		if !ungrouped {
			return nil, nil, fmt.Errorf("%w: no group selected", model.ErrInvalidGrouping)
		}
		return d, next, nil
	})
}

func (e *Editor) RemoveSelection() error {
	return e.editSelection(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		next, err := d.RemoveItems(selection...)
		return next, nil, err
	})
}

func (e *Editor) Reorder(mode model.ReorderMode) error {
	return e.editSelection(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		next, err := d.Reorder(selection, mode)
		return next, selection, err
	})
}

// TransformSelection maps the selection bounds onto newBounds, moving,
// resizing and rotating every selected item and its descendants.
func (e *Editor) TransformSelection(newBounds geom.Transform) error {
	return e.editSelection(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		oldBounds, _ := selectionBounds(d, selection)
		next, err := d.TransformItems(selection, oldBounds, newBounds)
		return next, selection, err
	})
}

func (e *Editor) MoveSelection(delta geom.Vec2) error {
	return e.editSelection(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		oldBounds, _ := selectionBounds(d, selection)
		next, err := d.TransformItems(selection, oldBounds, oldBounds.MoveBy(delta))
		return next, selection, err
	})
}

// UpdateAppearance sets key on every selected shape.
func (e *Editor) UpdateAppearance(key string, value any) error {
	return e.editSelection(func(d *model.Diagram, selection []string) (*model.Diagram, []string, error) {
		next, err := d.UpdateAppearance(selection, key, value)
		return next, selection, err
	})
}

// --- Clipboard ---

// Copy serializes the selected items.
func (e *Editor) Copy() (*serializer.Document, error) {
	d, selection := e.Snapshot()
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}
	set, err := model.CreateFromDiagram(selection, d)
	if err != nil {
		return nil, err
	}
	return e.serializer.SerializeSet(set)
}

// Cut copies and then removes the selection.
func (e *Editor) Cut() (*serializer.Document, error) {
	doc, err := e.Copy()
	if err != nil {
		return nil, err
	}
	if err := e.RemoveSelection(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Paste adds the items of doc under fresh ids, shifted by the paste offset,
// and selects the pasted top-level items.
func (e *Editor) Paste(doc *serializer.Document) ([]string, error) {
	remapped, err := serializer.GenerateNewIDs(doc)
	if err != nil {
		return nil, err
	}
	for i := range remapped.Visuals {
		remapped.Visuals[i].Transform.X += e.cfg.PasteOffset
		remapped.Visuals[i].Transform.Y += e.cfg.PasteOffset
	}

	set, err := e.serializer.DeserializeSet(remapped)
	if err != nil {
		return nil, err
	}
	err = e.edit(func(d *model.Diagram, _ []string) (*model.Diagram, []string, error) {
		next, err := d.AddItemSet(set)
		return next, set.RootIDs(), err
	})
	if err != nil {
		return nil, err
	}
	e.log.Debug("pasted", "items", set.Len())
	return set.RootIDs(), nil
}

// Duplicate pastes a copy of the selection.
func (e *Editor) Duplicate() ([]string, error) {
	doc, err := e.Copy()
	if err != nil {
		return nil, err
	}
	return e.Paste(doc)
}

// --- Queries ---

// HitTest returns the topmost shape whose rotated rectangle contains p, or
// nil.
func (e *Editor) HitTest(p geom.Vec2) model.DiagramItem {
	d := e.Diagram()
	visuals := paintOrder(d)
	for i := len(visuals) - 1; i >= 0; i-- {
		if visuals[i].Bounds(d).ContainsVec(p) {
			return visuals[i]
		}
	}
	return nil
}

// paintOrder lists the visuals of d back to front.
func paintOrder(d *model.Diagram) []model.DiagramItem {
	set, err := model.CreateFromDiagram(d.RootIDs(), d)
	if err != nil {
		return nil
	}
	return set.AllVisuals()
}
