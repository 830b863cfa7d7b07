package engine

import (
	"slices"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/interaction"
)

// overlayCanvas keeps adorner overlays in memory; Render turns the visible
// ones into draw commands.
type overlayCanvas struct {
	layers []*overlayLayer
}

func (c *overlayCanvas) NewLayer() interaction.Layer {
	l := &overlayLayer{canvas: c}
	c.layers = append(c.layers, l)
	return l
}

// visible returns the shown overlays, selection outlines before drag
// rectangles.
func (c *overlayCanvas) visible() []*overlayRect {
	var out []*overlayRect
	for _, kind := range []interaction.OverlayKind{interaction.OverlaySelection, interaction.OverlayDragRect} {
		for _, l := range c.layers {
			for _, r := range l.rects {
				if r.kind == kind && r.visible {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

type overlayLayer struct {
	canvas *overlayCanvas
	rects  []*overlayRect
}

func (l *overlayLayer) NewRect(kind interaction.OverlayKind) interaction.Overlay {
	r := &overlayRect{kind: kind}
	l.rects = append(l.rects, r)
	return r
}

func (l *overlayLayer) Remove() {
	l.canvas.layers = slices.DeleteFunc(l.canvas.layers, func(o *overlayLayer) bool { return o == l })
	l.rects = nil
}

type overlayRect struct {
	kind      interaction.OverlayKind
	transform geom.Transform
	visible   bool
}

func (r *overlayRect) SetTransform(t geom.Transform) { r.transform = t }
func (r *overlayRect) Show()                         { r.visible = true }
func (r *overlayRect) Hide()                         { r.visible = false }
func (r *overlayRect) Visible() bool                 { return r.visible }
