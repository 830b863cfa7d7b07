// Package interaction dispatches pointer events through a chain of handlers
// and implements the selection adorner, the handler that turns clicks and
// drag rectangles into selections.
package interaction

import (
	"slices"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/model"
)

// KeyModifiers is a bitmask of modifier keys held during an event.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command key
)

// Event is a pointer event in canvas coordinates. Item is the item directly
// under the pointer, or nil.
type Event struct {
	Position geom.Vec2
	Item     model.DiagramItem
}

// Handler receives pointer events. A handler that does not consume an event
// calls next to pass it down the chain.
type Handler interface {
	OnMouseDown(e Event, next func() error) error
	OnMouseDrag(e Event, next func() error) error
	OnMouseUp(e Event, next func() error) error
}

// Service owns the handler chain and the modifier key state of one canvas.
// It is not safe for concurrent use; events are dispatched one at a time.
type Service struct {
	handlers []Handler
	mods     KeyModifiers
}

func NewService() *Service {
	return &Service{}
}

// AddHandler appends h to the chain. Adding a registered handler is a no-op.
func (s *Service) AddHandler(h Handler) {
	for _, existing := range s.handlers {
		if existing == h {
			return
		}
	}
	s.handlers = append(s.handlers, h)
}

func (s *Service) RemoveHandler(h Handler) {
	for i := range s.handlers {
		if s.handlers[i] == h {
			copy(s.handlers[i:], s.handlers[i+1:])
			s.handlers[len(s.handlers)-1] = nil
			s.handlers = s.handlers[:len(s.handlers)-1]
			return
		}
	}
}

func (s *Service) NumHandlers() int { return len(s.handlers) }

func (s *Service) SetModifiers(mods KeyModifiers) { s.mods = mods }

func (s *Service) Modifiers() KeyModifiers { return s.mods }

func (s *Service) IsShiftKeyPressed() bool { return s.mods&ModShift != 0 }

func (s *Service) IsControlKeyPressed() bool { return s.mods&ModCtrl != 0 }

func (s *Service) MouseDown(e Event) error {
	return dispatch(slices.Clone(s.handlers), e, Handler.OnMouseDown)
}

func (s *Service) MouseDrag(e Event) error {
	return dispatch(slices.Clone(s.handlers), e, Handler.OnMouseDrag)
}

func (s *Service) MouseUp(e Event) error {
	return dispatch(slices.Clone(s.handlers), e, Handler.OnMouseUp)
}

// dispatch runs the chain captured when the event arrived. Handlers added or
// removed while it runs take effect with the next event.
func dispatch(chain []Handler, e Event, call func(Handler, Event, func() error) error) error {
	if len(chain) == 0 {
		return nil
	}
	return call(chain[0], e, func() error {
		return dispatch(chain[1:], e, call)
	})
}
