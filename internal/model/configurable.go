package model

import (
	"fmt"
	"slices"

	"github.com/mazznoer/csscolorparser"
)

type ConfigurableKind string

const (
	KindColor     ConfigurableKind = "color"
	KindNumber    ConfigurableKind = "number"
	KindSlider    ConfigurableKind = "slider"
	KindSelection ConfigurableKind = "selection"
	KindText      ConfigurableKind = "text"
	KindToggle    ConfigurableKind = "toggle"
)

// Configurable describes one editable appearance property of a shape.
// Name is the appearance key the property edits.
type Configurable struct {
	Name    string           `json:"name" toml:"name"`
	Label   string           `json:"label" toml:"label"`
	Kind    ConfigurableKind `json:"kind" toml:"kind"`
	Min     float64          `json:"min,omitempty" toml:"min"`
	Max     float64          `json:"max,omitempty" toml:"max"`
	Options []string         `json:"options,omitempty" toml:"options"`
}

// Validate checks that value is acceptable for the property.
func (c Configurable) Validate(value any) error {
	value = normalizeValue(value)

	switch c.Kind {
	case KindColor:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s expects a color string, got %T", ErrInvalidValue, c.Name, value)
		}
		if _, err := csscolorparser.Parse(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, c.Name, err)
		}

	case KindNumber, KindSlider:
		n, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: %s expects a number, got %T", ErrInvalidValue, c.Name, value)
		}
		if c.Max > c.Min && (n < c.Min || n > c.Max) {
			return fmt.Errorf("%w: %s must be between %g and %g", ErrInvalidValue, c.Name, c.Min, c.Max)
		}

	case KindSelection:
		s, ok := value.(string)
		if !ok || !slices.Contains(c.Options, s) {
			return fmt.Errorf("%w: %s must be one of %v", ErrInvalidValue, c.Name, c.Options)
		}

	case KindText:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: %s expects text, got %T", ErrInvalidValue, c.Name, value)
		}

	case KindToggle:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: %s expects a boolean, got %T", ErrInvalidValue, c.Name, value)
		}

	default:
		return fmt.Errorf("%w: %s has unknown kind %q", ErrInvalidValue, c.Name, c.Kind)
	}

	return nil
}
