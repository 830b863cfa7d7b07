package interaction

import "github.com/inamate/wireframe/backend-go/internal/geom"

type OverlayKind string

const (
	// OverlayDragRect is the translucent rectangle shown while dragging.
	OverlayDragRect OverlayKind = "dragRect"
	// OverlaySelection outlines one selected item.
	OverlaySelection OverlayKind = "selection"
)

const (
	SelectionStrokeColor = "#009"
	SelectionFillColor   = "#00f"
	DragRectOpacity      = 0.4
)

// Overlay is a rectangle drawn above the diagram. Overlays are reused:
// hiding one keeps it for the next time it is needed.
type Overlay interface {
	SetTransform(t geom.Transform)
	Show()
	Hide()
	Visible() bool
}

// Layer is a group of overlays owned by one adorner.
type Layer interface {
	NewRect(kind OverlayKind) Overlay
	Remove()
}

// Canvas creates overlay layers.
type Canvas interface {
	NewLayer() Layer
}
