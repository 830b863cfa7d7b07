// Package serializer converts diagram item sets to and from the portable
// Document format and re-keys documents for paste and import.
package serializer

import (
	"errors"
	"fmt"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/typeid"
)

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrUnsupportedVisual = errors.New("unsupported visual")
)

// Registry resolves renderer keys to shape plugins.
type Registry interface {
	RegisteredRenderer(key string) (renderer.Plugin, error)
}

type Serializer struct {
	renderers Registry
}

func New(renderers Registry) *Serializer {
	return &Serializer{renderers: renderers}
}

// SerializeSet writes the visuals and groups of set in traversal order.
// Visuals other than shapes fail the whole call with ErrUnsupportedVisual.
func (s *Serializer) SerializeSet(set *model.ItemSet) (*Document, error) {
	doc := &Document{
		Visuals: make([]Visual, 0, len(set.AllVisuals())),
		Groups:  make([]Group, 0, len(set.AllGroups())),
	}

	for _, item := range set.AllVisuals() {
		shape, ok := item.(*model.Shape)
		if !ok {
			return nil, fmt.Errorf("%w: %s has type %T", ErrUnsupportedVisual, item.ID(), item)
		}
		doc.Visuals = append(doc.Visuals, Visual{
			ID:         shape.ID(),
			Renderer:   shape.Renderer(),
			Transform:  transformToDocument(shape.Transform()),
			Appearance: shape.Appearance(),
		})
	}

	for _, g := range set.AllGroups() {
		doc.Groups = append(doc.Groups, Group{
			ID:       g.ID(),
			ChildIDs: g.ChildIDs(),
			Rotation: g.Rotation().Degrees(),
		})
	}

	return doc, nil
}

// SerializeDiagram writes every item of d.
func (s *Serializer) SerializeDiagram(d *model.Diagram) (*Document, error) {
	set, err := model.CreateFromDiagram(d.RootIDs(), d)
	if err != nil {
		return nil, err
	}
	return s.SerializeSet(set)
}

// DeserializeSet rebuilds the items of doc. Shapes start from the template
// of their renderer plugin, so configurables always come from the plugin;
// the stored transform and appearance are applied on top. Nothing is
// returned unless every item could be rebuilt.
func (s *Serializer) DeserializeSet(doc *Document) (*model.ItemSet, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	visuals := make([]model.DiagramItem, 0, len(doc.Visuals))
	for _, v := range doc.Visuals {
		plugin, err := s.renderers.RegisteredRenderer(v.Renderer)
		if err != nil {
			return nil, fmt.Errorf("visual %s: %w", v.ID, err)
		}

		shape := plugin.CreateDefaultShape(v.ID).WithTransform(v.Transform.geom())
		shape, err = shape.WithAppearance(v.Appearance)
		if err != nil {
			return nil, fmt.Errorf("%w: visual %s: %w", ErrMalformedDocument, v.ID, err)
		}
		visuals = append(visuals, shape)
	}

	groups := make([]*model.Group, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		groups = append(groups, model.NewGroup(g.ID, g.ChildIDs, geom.Degrees(g.Rotation)))
	}

	set, err := model.NewItemSet(visuals, groups)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return set, nil
}

// GenerateNewIDs returns a copy of doc in which every id, at its definition
// and at every child reference, is replaced by a fresh one. The mapping is
// built once per call; fresh ids keep the typeid prefix of the id they
// replace.
func GenerateNewIDs(doc *Document) (*Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	mapping := make(map[string]string, doc.Len())
	for _, id := range doc.IDs() {
		mapping[id] = typeid.NewLike(id)
	}

	out := &Document{
		Visuals: make([]Visual, len(doc.Visuals)),
		Groups:  make([]Group, len(doc.Groups)),
	}
	for i, v := range doc.Visuals {
		v.ID = mapping[v.ID]
		v.Appearance = v.Appearance.Clone()
		out.Visuals[i] = v
	}
	for i, g := range doc.Groups {
		children := make([]string, len(g.ChildIDs))
		for j, child := range g.ChildIDs {
			children[j] = mapping[child]
		}
		out.Groups[i] = Group{ID: mapping[g.ID], ChildIDs: children, Rotation: g.Rotation}
	}
	return out, nil
}
