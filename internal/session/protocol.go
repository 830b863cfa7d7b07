package session

import (
	"encoding/json"

	"github.com/inamate/wireframe/backend-go/internal/engine"
)

type Message struct {
	Type     string          `json:"type"`
	ClientID string          `json:"clientId,omitempty"`
	Seq      int64           `json:"seq,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	// Connection
	TypeWelcome = "welcome"
	TypeError   = "error"

	// Documents
	TypeDocLoad   = "doc.load"
	TypeDocSample = "doc.sample"
	TypeDocExport = "doc.export"
	TypeDoc       = "doc"

	// Pointer input
	TypeMouseDown = "mouse.down"
	TypeMouseDrag = "mouse.drag"
	TypeMouseUp   = "mouse.up"

	// Edits
	TypeShapeAdd       = "shape.add"
	TypeEditSelect     = "edit.select"
	TypeEditGroup      = "edit.group"
	TypeEditUngroup    = "edit.ungroup"
	TypeEditDelete     = "edit.delete"
	TypeEditReorder    = "edit.reorder"
	TypeEditMove       = "edit.move"
	TypeEditAppearance = "edit.appearance"

	// Clipboard
	TypeClipboardCopy      = "clipboard.copy"
	TypeClipboardCut       = "clipboard.cut"
	TypeClipboardPaste     = "clipboard.paste"
	TypeClipboardDuplicate = "clipboard.duplicate"
	TypeClipboard          = "clipboard"

	// Rendering
	TypeRender = "render"
	TypeDraw   = "draw"
)

type WelcomePayload struct {
	ClientID  string   `json:"clientId"`
	Subject   string   `json:"subject"`
	Renderers []string `json:"renderers"`
}

type ErrorPayload struct {
	Message string `json:"message"`
	Request string `json:"request,omitempty"`
}

type PointerPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ItemID string  `json:"itemId,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
}

type ShapeAddPayload struct {
	Renderer string  `json:"renderer"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type SelectPayload struct {
	IDs []string `json:"ids"`
}

type ReorderPayload struct {
	Mode string `json:"mode"`
}

type MovePayload struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

type AppearancePayload struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type DrawPayload struct {
	Commands  []engine.DrawCommand `json:"commands"`
	Selection []string             `json:"selection"`
}
