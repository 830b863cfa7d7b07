package session

import (
	"encoding/json"
	"fmt"

	"github.com/inamate/wireframe/backend-go/internal/engine"
	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/interaction"
	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
)

// handleMessage applies one request to e and returns the replies. Failed
// requests produce a single error reply; the editor is left as it was.
func handleMessage(e *engine.Editor, msg *Message) []*Message {
	replies, err := dispatch(e, msg)
	if err != nil {
		return []*Message{reply(TypeError, msg.Seq, ErrorPayload{Message: err.Error(), Request: msg.Type})}
	}
	return replies
}

func dispatch(e *engine.Editor, msg *Message) ([]*Message, error) {
	switch msg.Type {
	case TypeDocLoad:
		var doc serializer.Document
		if err := decode(msg, &doc); err != nil {
			return nil, err
		}
		if err := e.Load(&doc); err != nil {
			return nil, err
		}

	case TypeDocSample:
		if err := e.LoadSample(); err != nil {
			return nil, err
		}

	case TypeDocExport:
		doc, err := e.Export()
		if err != nil {
			return nil, err
		}
		return []*Message{reply(TypeDoc, msg.Seq, doc)}, nil

	case TypeMouseDown, TypeMouseDrag, TypeMouseUp:
		var p PointerPayload
		if err := decode(msg, &p); err != nil {
			return nil, err
		}
		if err := pointer(e, msg.Type, p); err != nil {
			return nil, err
		}

	case TypeShapeAdd:
		var p ShapeAddPayload
		if err := decode(msg, &p); err != nil {
			return nil, err
		}
		if _, err := e.AddShape(p.Renderer, geom.V(p.X, p.Y)); err != nil {
			return nil, err
		}

	case TypeEditSelect:
		var p SelectPayload
		if err := decode(msg, &p); err != nil {
			return nil, err
		}
		if err := e.SelectItems(nil, p.IDs); err != nil {
			return nil, err
		}

	case TypeEditGroup:
		if _, err := e.GroupSelection(); err != nil {
			return nil, err
		}

	case TypeEditUngroup:
		if err := e.UngroupSelection(); err != nil {
			return nil, err
		}

	case TypeEditDelete:
		if err := e.RemoveSelection(); err != nil {
			return nil, err
		}

	case TypeEditReorder:
		var p ReorderPayload
		if err := decode(msg, &p); err != nil {
			return nil, err
		}
		mode, err := model.ParseReorderMode(p.Mode)
		if err != nil {
			return nil, err
		}
		if err := e.Reorder(mode); err != nil {
			return nil, err
		}

	case TypeEditMove:
		var p MovePayload
		if err := decode(msg, &p); err != nil {
			return nil, err
		}
		if err := e.MoveSelection(geom.V(p.DX, p.DY)); err != nil {
			return nil, err
		}

	case TypeEditAppearance:
		var p AppearancePayload
		if err := decode(msg, &p); err != nil {
			return nil, err
		}
		if err := e.UpdateAppearance(p.Key, p.Value); err != nil {
			return nil, err
		}

	case TypeClipboardCopy:
		doc, err := e.Copy()
		if err != nil {
			return nil, err
		}
		return []*Message{reply(TypeClipboard, msg.Seq, doc)}, nil

	case TypeClipboardCut:
		doc, err := e.Cut()
		if err != nil {
			return nil, err
		}
		return []*Message{reply(TypeClipboard, msg.Seq, doc), draw(e, msg.Seq)}, nil

	case TypeClipboardPaste:
		var doc serializer.Document
		if err := decode(msg, &doc); err != nil {
			return nil, err
		}
		if _, err := e.Paste(&doc); err != nil {
			return nil, err
		}

	case TypeClipboardDuplicate:
		if _, err := e.Duplicate(); err != nil {
			return nil, err
		}

	case TypeRender:
		// Nothing to apply; the draw reply below is the answer.

	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}

	return []*Message{draw(e, msg.Seq)}, nil
}

func pointer(e *engine.Editor, typ string, p PointerPayload) error {
	var mods interaction.KeyModifiers
	if p.Shift {
		mods |= interaction.ModShift
	}
	if p.Ctrl {
		mods |= interaction.ModCtrl
	}
	ev := engine.PointerEvent{Position: geom.V(p.X, p.Y), ItemID: p.ItemID, Modifiers: mods}

	switch typ {
	case TypeMouseDown:
		return e.MouseDown(ev)
	case TypeMouseDrag:
		return e.MouseDrag(ev)
	default:
		return e.MouseUp(ev)
	}
}

func decode(msg *Message, v any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%s: missing payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%s: invalid payload: %w", msg.Type, err)
	}
	return nil
}

func draw(e *engine.Editor, seq int64) *Message {
	commands := e.Render()
	if commands == nil {
		commands = []engine.DrawCommand{}
	}
	return reply(TypeDraw, seq, DrawPayload{Commands: commands, Selection: e.Selection()})
}

// reply encodes payload as a typ message. A payload that cannot be encoded
// turns the reply into an error naming typ.
func reply(typ string, seq int64, payload any) *Message {
	data, err := json.Marshal(payload)
	if err != nil {
		typ, data = TypeError, errorPayload(typ, fmt.Errorf("encode reply: %w", err))
	}
	return &Message{Type: typ, Seq: seq, Payload: data}
}

func errorPayload(request string, err error) json.RawMessage {
	data, _ := json.Marshal(ErrorPayload{Message: err.Error(), Request: request})
	return data
}
