package renderer

import (
	"fmt"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/model"
)

// Template is a data-driven Plugin: a renderer key plus default size,
// appearance and configurables. Built-in shapes and catalog shapes are both
// templates.
type Template struct {
	Key           string               `toml:"renderer" json:"renderer"`
	Width         float64              `toml:"width" json:"width"`
	Height        float64              `toml:"height" json:"height"`
	Appearance    model.Appearance     `toml:"appearance" json:"appearance"`
	Configurables []model.Configurable `toml:"configurable" json:"configurables"`
}

func (t *Template) Identifier() string { return t.Key }

// CreateDefaultShape places the shape with its top-left corner at the origin.
func (t *Template) CreateDefaultShape(id string) *model.Shape {
	size := geom.V(t.Width, t.Height)
	transform := geom.NewTransform(size.Scale(0.5), size, 0)
	return model.NewShape(id, t.Key, transform, t.Appearance, t.Configurables)
}

// Validate checks that the template can produce usable shapes and that its
// default appearance satisfies its own configurables.
func (t *Template) Validate() error {
	if t.Key == "" {
		return fmt.Errorf("template: missing renderer key")
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("template %s: size must be positive, got %gx%g", t.Key, t.Width, t.Height)
	}
	for _, c := range t.Configurables {
		if c.Name == "" {
			return fmt.Errorf("template %s: configurable without name", t.Key)
		}
		v, ok := t.Appearance[c.Name]
		if !ok {
			continue
		}
		if err := c.Validate(v); err != nil {
			return fmt.Errorf("template %s: default appearance: %w", t.Key, err)
		}
	}
	return nil
}
