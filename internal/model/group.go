package model

import (
	"slices"

	"github.com/inamate/wireframe/backend-go/internal/geom"
)

// Group is a composite item. ChildIDs are ordered back to front.
type Group struct {
	id       string
	childIDs []string
	rotation geom.Rotation
}

func NewGroup(id string, childIDs []string, rotation geom.Rotation) *Group {
	return &Group{id: id, childIDs: slices.Clone(childIDs), rotation: rotation}
}

func (g *Group) ID() string              { return g.id }
func (g *Group) Type() ItemType          { return ItemTypeGroup }
func (g *Group) Rotation() geom.Rotation { return g.rotation }
func (g *Group) ChildIDs() []string      { return slices.Clone(g.childIDs) }
func (g *Group) ChildAt(i int) string    { return g.childIDs[i] }
func (g *Group) NumChildren() int        { return len(g.childIDs) }

// Bounds covers all children of the group as found in d, rotated by the
// group's own rotation.
func (g *Group) Bounds(d *Diagram) geom.Transform {
	transforms := make([]geom.Transform, 0, len(g.childIDs))
	for _, id := range g.childIDs {
		child, ok := d.Item(id)
		if !ok {
			continue
		}
		transforms = append(transforms, child.Bounds(d))
	}
	return geom.CreateFromTransformsAndRotation(transforms, g.rotation)
}

// TransformByBounds only carries the rotation; children are transformed by
// the diagram.
func (g *Group) TransformByBounds(oldBounds, newBounds geom.Transform) DiagramItem {
	c := g.clone()
	c.rotation = g.rotation.Add(newBounds.Rotation.Sub(oldBounds.Rotation))
	return c
}

func (g *Group) Clone() DiagramItem {
	return g.clone()
}

func (g *Group) clone() *Group {
	return NewGroup(g.id, g.childIDs, g.rotation)
}

func (g *Group) withChildIDs(ids []string) *Group {
	return NewGroup(g.id, ids, g.rotation)
}
