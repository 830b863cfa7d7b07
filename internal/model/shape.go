package model

import (
	"fmt"
	"slices"

	"github.com/inamate/wireframe/backend-go/internal/geom"
)

// Shape is a leaf visual drawn by the plugin registered under Renderer.
type Shape struct {
	id            string
	renderer      string
	transform     geom.Transform
	appearance    Appearance
	configurables []Configurable
}

func NewShape(id, renderer string, transform geom.Transform, appearance Appearance, configurables []Configurable) *Shape {
	return &Shape{
		id:            id,
		renderer:      renderer,
		transform:     transform,
		appearance:    Appearance{}.Merge(appearance),
		configurables: slices.Clone(configurables),
	}
}

func (s *Shape) ID() string       { return s.id }
func (s *Shape) Type() ItemType   { return ItemTypeShape }
func (s *Shape) Renderer() string { return s.renderer }

func (s *Shape) Transform() geom.Transform { return s.transform }

// Appearance returns a copy of the shape's appearance.
func (s *Shape) Appearance() Appearance { return s.appearance.Clone() }

func (s *Shape) AppearanceValue(key string) (any, bool) {
	v, ok := s.appearance[key]
	return v, ok
}

func (s *Shape) Configurables() []Configurable { return slices.Clone(s.configurables) }

// Configurable returns the descriptor editing the given appearance key.
func (s *Shape) Configurable(name string) (Configurable, bool) {
	for _, c := range s.configurables {
		if c.Name == name {
			return c, true
		}
	}
	return Configurable{}, false
}

func (s *Shape) Bounds(*Diagram) geom.Transform { return s.transform }

func (s *Shape) TransformByBounds(oldBounds, newBounds geom.Transform) DiagramItem {
	return s.WithTransform(s.transform.TransformByBounds(oldBounds, newBounds))
}

func (s *Shape) Clone() DiagramItem {
	return s.clone()
}

func (s *Shape) clone() *Shape {
	return &Shape{
		id:            s.id,
		renderer:      s.renderer,
		transform:     s.transform,
		appearance:    s.appearance.Clone(),
		configurables: slices.Clone(s.configurables),
	}
}

func (s *Shape) WithTransform(t geom.Transform) *Shape {
	c := s.clone()
	c.transform = t
	return c
}

// TransformWith returns a copy with fn applied to the transform.
func (s *Shape) TransformWith(fn func(geom.Transform) geom.Transform) *Shape {
	return s.WithTransform(fn(s.transform))
}

// SetAppearance returns a copy with key set to value. Keys backed by a
// configurable are validated against it.
func (s *Shape) SetAppearance(key string, value any) (*Shape, error) {
	if c, ok := s.Configurable(key); ok {
		if err := c.Validate(value); err != nil {
			return nil, err
		}
	}
	c := s.clone()
	c.appearance[key] = normalizeValue(value)
	return c, nil
}

// WithAppearance returns a copy with every entry of a applied via SetAppearance.
func (s *Shape) WithAppearance(a Appearance) (*Shape, error) {
	result := s
	for _, key := range sortedKeys(a) {
		next, err := result.SetAppearance(key, a[key])
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", s.id, err)
		}
		result = next
	}
	return result, nil
}

func sortedKeys(a Appearance) []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
