package interaction

import (
	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/model"
)

// DefaultDragThreshold is the squared distance the pointer must travel
// between mouse-down and mouse-up for a drag to select.
const DefaultDragThreshold = 10.0

// Selector gives the adorner access to the current diagram and selection.
type Selector interface {
	Diagram() *model.Diagram
	Selection() []string
	SelectItems(d *model.Diagram, ids []string) error
}

// SelectionAdorner selects items on click and by drag rectangle, and marks
// the selected items with outline overlays.
//
// Mouse-down selects the clicked item unless shift is held, and starts a
// drag when nothing was hit. Mouse-up after a drag selects every top-level
// item inside the rectangle, provided the pointer moved further than the
// threshold. The drag state is reset on every mouse-up, including failed
// ones.
type SelectionAdorner struct {
	service   *Service
	selector  Selector
	threshold float64

	layer     Layer
	dragRect  Overlay
	markers   []Overlay
	dragging  bool
	dragStart geom.Vec2
}

// NewSelectionAdorner creates an adorner. A threshold <= 0 selects
// DefaultDragThreshold.
func NewSelectionAdorner(service *Service, selector Selector, threshold float64) *SelectionAdorner {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &SelectionAdorner{
		service:   service,
		selector:  selector,
		threshold: threshold,
	}
}

// Attach registers the adorner with its service and creates its overlay
// layer on canvas.
func (a *SelectionAdorner) Attach(canvas Canvas) {
	a.layer = canvas.NewLayer()
	a.service.AddHandler(a)
}

// Detach unregisters the adorner and removes its overlays.
func (a *SelectionAdorner) Detach() {
	a.service.RemoveHandler(a)
	if a.layer != nil {
		a.layer.Remove()
	}
	a.layer = nil
	a.dragRect = nil
	a.markers = nil
	a.dragging = false
}

func (a *SelectionAdorner) Attached() bool { return a.layer != nil }

func (a *SelectionAdorner) Dragging() bool { return a.dragging }

func (a *SelectionAdorner) Threshold() float64 { return a.threshold }

func (a *SelectionAdorner) OnMouseDown(e Event, next func() error) error {
	if !a.service.IsShiftKeyPressed() {
		d := a.selector.Diagram()
		if err := a.selector.SelectItems(d, a.selectSingle(e, d)); err != nil {
			return err
		}
	}

	if e.Item == nil {
		a.dragging = true
		a.dragStart = e.Position
	}
	return nil
}

func (a *SelectionAdorner) OnMouseDrag(e Event, next func() error) error {
	if !a.dragging {
		return next()
	}

	area := geom.CreateFromVecs(e.Position, a.dragStart)
	rect := a.dragRectangle()
	if area.Area() > 0 {
		rect.SetTransform(geom.CreateFromRect(area))
		rect.Show()
	} else {
		rect.Hide()
	}
	return nil
}

func (a *SelectionAdorner) OnMouseUp(e Event, next func() error) error {
	if !a.dragging {
		return next()
	}

	defer func() {
		a.dragging = false
		a.dragStart = geom.Zero
		if a.dragRect != nil {
			a.dragRect.Hide()
		}
	}()

	if !a.hasMoved(e) {
		return nil
	}
	d := a.selector.Diagram()
	return a.selector.SelectItems(d, a.selectMultiple(e, d))
}

// MarkItems positions one selection overlay over each selected item and
// hides the overlays left over from larger selections.
func (a *SelectionAdorner) MarkItems() {
	if a.layer == nil {
		return
	}
	for _, m := range a.markers {
		m.Hide()
	}

	d := a.selector.Diagram()
	i := 0
	for _, id := range a.selector.Selection() {
		item, ok := d.Item(id)
		if !ok {
			continue
		}
		if i >= len(a.markers) {
			a.markers = append(a.markers, a.layer.NewRect(OverlaySelection))
		}
		a.markers[i].SetTransform(item.Bounds(d))
		a.markers[i].Show()
		i++
	}
}

func (a *SelectionAdorner) hasMoved(e Event) bool {
	return e.Position.Sub(a.dragStart).LengthSquared() > a.threshold
}

func (a *SelectionAdorner) selectSingle(e Event, d *model.Diagram) []string {
	if e.Item == nil || !e.Item.Bounds(d).Aabb().ContainsVec(e.Position) {
		return []string{}
	}
	return model.CalculateSelection([]model.DiagramItem{e.Item}, d, true, a.service.IsControlKeyPressed(), a.selector.Selection())
}

func (a *SelectionAdorner) selectMultiple(e Event, d *model.Diagram) []string {
	area := geom.CreateFromVecs(a.dragStart, e.Position)

	var hits []model.DiagramItem
	for _, id := range d.RootIDs() {
		item, ok := d.Item(id)
		if ok && area.ContainsRect(item.Bounds(d).Aabb()) {
			hits = append(hits, item)
		}
	}
	return model.CalculateSelection(hits, d, true, false, a.selector.Selection())
}

func (a *SelectionAdorner) dragRectangle() Overlay {
	if a.dragRect == nil {
		a.dragRect = a.layer.NewRect(OverlayDragRect)
	}
	return a.dragRect
}
