package engine

import (
	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/interaction"
)

// PointerEvent is a pointer event as delivered by a frontend. ItemID names
// the item the frontend hit; when empty the editor hit tests Position.
type PointerEvent struct {
	Position  geom.Vec2
	ItemID    string
	Modifiers interaction.KeyModifiers
}

func (e *Editor) MouseDown(ev PointerEvent) error {
	return e.interactions.MouseDown(e.event(ev))
}

func (e *Editor) MouseDrag(ev PointerEvent) error {
	return e.interactions.MouseDrag(e.event(ev))
}

func (e *Editor) MouseUp(ev PointerEvent) error {
	return e.interactions.MouseUp(e.event(ev))
}

// Dragging reports whether a drag selection is in progress.
func (e *Editor) Dragging() bool { return e.adorner.Dragging() }

func (e *Editor) event(ev PointerEvent) interaction.Event {
	e.interactions.SetModifiers(ev.Modifiers)

	out := interaction.Event{Position: ev.Position}
	if ev.ItemID != "" {
		if item, ok := e.Diagram().Item(ev.ItemID); ok {
			out.Item = item
		}
		return out
	}
	out.Item = e.HitTest(ev.Position)
	return out
}
