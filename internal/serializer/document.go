package serializer

import (
	"fmt"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/model"
)

// Document is the portable form of a set of diagram items. Both lists are
// in item set traversal order.
type Document struct {
	Visuals []Visual `json:"visuals"`
	Groups  []Group  `json:"groups"`
}

// Transform stores the center position, size and rotation (degrees) of a
// visual.
type Transform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Rotation float64 `json:"rotation"`
}

type Visual struct {
	ID         string           `json:"id"`
	Renderer   string           `json:"renderer"`
	Transform  Transform        `json:"transform"`
	Appearance model.Appearance `json:"appearance,omitempty"`
}

type Group struct {
	ID       string   `json:"id"`
	ChildIDs []string `json:"childIds"`
	Rotation float64  `json:"rotation,omitempty"`
}

func transformToDocument(t geom.Transform) Transform {
	return Transform{
		X:        t.Position.X,
		Y:        t.Position.Y,
		W:        t.Size.X,
		H:        t.Size.Y,
		Rotation: t.Rotation.Degrees(),
	}
}

func (t Transform) geom() geom.Transform {
	return geom.NewTransform(geom.V(t.X, t.Y), geom.V(t.W, t.H), geom.Degrees(t.Rotation))
}

// IDs returns every defined id, visuals first.
func (d *Document) IDs() []string {
	ids := make([]string, 0, len(d.Visuals)+len(d.Groups))
	for _, v := range d.Visuals {
		ids = append(ids, v.ID)
	}
	for _, g := range d.Groups {
		ids = append(ids, g.ID)
	}
	return ids
}

// Len returns the number of items in the document.
func (d *Document) Len() int { return len(d.Visuals) + len(d.Groups) }

// Validate checks the structural rules every importable document follows:
// visuals name a renderer, ids are present and unique, and every child id
// refers to exactly one item owned by exactly one group. Group cycles are
// detected when the item set is built.
func (d *Document) Validate() error {
	defined := make(map[string]bool, d.Len())
	for i, v := range d.Visuals {
		if v.ID == "" {
			return fmt.Errorf("%w: visual %d has no id", ErrMalformedDocument, i)
		}
		if v.Renderer == "" {
			return fmt.Errorf("%w: visual %s has no renderer", ErrMalformedDocument, v.ID)
		}
		if defined[v.ID] {
			return fmt.Errorf("%w: duplicate id %s", ErrMalformedDocument, v.ID)
		}
		defined[v.ID] = true
	}
	for i, g := range d.Groups {
		if g.ID == "" {
			return fmt.Errorf("%w: group %d has no id", ErrMalformedDocument, i)
		}
		if defined[g.ID] {
			return fmt.Errorf("%w: duplicate id %s", ErrMalformedDocument, g.ID)
		}
		defined[g.ID] = true
	}

	owner := make(map[string]string)
	for _, g := range d.Groups {
		if len(g.ChildIDs) == 0 {
			return fmt.Errorf("%w: group %s has no children", ErrMalformedDocument, g.ID)
		}
		for _, child := range g.ChildIDs {
			if !defined[child] {
				return fmt.Errorf("%w: group %s references unknown id %s", ErrMalformedDocument, g.ID, child)
			}
			if prev, ok := owner[child]; ok {
				return fmt.Errorf("%w: %s is a child of both %s and %s", ErrMalformedDocument, child, prev, g.ID)
			}
			owner[child] = g.ID
		}
	}
	return nil
}
