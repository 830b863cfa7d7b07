package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/model"
)

func TestRegisteredRenderer(t *testing.T) {
	s := NewDefaultService()

	p, err := s.RegisteredRenderer(CheckboxRenderer)
	require.NoError(t, err)
	assert.Equal(t, CheckboxRenderer, p.Identifier())

	_, err = s.RegisteredRenderer("Slider")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{ButtonRenderer, CheckboxRenderer, RectangleRenderer}, s.Renderers())
}

func TestAddRendererReplaces(t *testing.T) {
	s := NewDefaultService()
	s.AddRenderer(&Template{Key: CheckboxRenderer, Width: 10, Height: 10})

	p, err := s.RegisteredRenderer(CheckboxRenderer)
	require.NoError(t, err)
	shape := p.CreateDefaultShape("x")
	assert.Equal(t, geom.V(10, 10), shape.Transform().Size)
	assert.Len(t, s.Renderers(), 3)
}

func TestCheckboxDefaults(t *testing.T) {
	shape := Checkbox().CreateDefaultShape("box")

	assert.Equal(t, "box", shape.ID())
	assert.Equal(t, CheckboxRenderer, shape.Renderer())
	assert.Equal(t, geom.NewRect2(0, 0, 104, 36), shape.Transform().Aabb())

	state, ok := shape.AppearanceValue(AppearanceState)
	require.True(t, ok)
	assert.Equal(t, StateChecked, state)

	_, err := shape.SetAppearance(AppearanceState, StateInterminate)
	assert.NoError(t, err)
	_, err = shape.SetAppearance(AppearanceState, "Unknown")
	assert.ErrorIs(t, err, model.ErrInvalidValue)
}

func TestBuiltinsValidate(t *testing.T) {
	for _, p := range Builtins() {
		assert.NoError(t, p.(*Template).Validate(), p.Identifier())
	}
}

const toggleCatalog = `
[[shape]]
renderer = "Toggle"
width = 60.0
height = 30.0

[shape.appearance]
STATE = "On"
FONT_SIZE = 12

[[shape.configurable]]
name = "STATE"
label = "State"
kind = "selection"
options = ["On", "Off"]

[[shape.configurable]]
name = "FONT_SIZE"
kind = "slider"
min = 6.0
max = 40.0
`

func TestDecodeCatalog(t *testing.T) {
	templates, err := DecodeCatalog(strings.NewReader(toggleCatalog))
	require.NoError(t, err)
	require.Len(t, templates, 1)

	s := NewDefaultService()
	Register(s, templates)

	p, err := s.RegisteredRenderer("Toggle")
	require.NoError(t, err)

	shape := p.CreateDefaultShape("t1")
	size, _ := shape.AppearanceValue("FONT_SIZE")
	assert.Equal(t, 12.0, size)

	_, err = shape.SetAppearance("FONT_SIZE", 50.0)
	assert.ErrorIs(t, err, model.ErrInvalidValue)
	_, err = shape.SetAppearance("STATE", "Off")
	assert.NoError(t, err)
}

func TestDecodeCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "[[shape]\n", "failed to parse TOML"},
		{"missing key", "[[shape]]\nwidth = 1.0\nheight = 1.0\n", "missing renderer key"},
		{"bad size", "[[shape]]\nrenderer = \"X\"\nwidth = 0.0\nheight = 1.0\n", "size must be positive"},
		{"unknown key", "[[shape]]\nrenderer = \"X\"\nwidth = 1.0\nheight = 1.0\ncolour = \"red\"\n", "unknown key"},
		{"duplicate", "[[shape]]\nrenderer = \"X\"\nwidth = 1.0\nheight = 1.0\n[[shape]]\nrenderer = \"X\"\nwidth = 1.0\nheight = 1.0\n", "declared twice"},
		{
			"bad default",
			"[[shape]]\nrenderer = \"X\"\nwidth = 1.0\nheight = 1.0\n[shape.appearance]\nCOLOR = \"nope\"\n[[shape.configurable]]\nname = \"COLOR\"\nkind = \"color\"\n",
			"default appearance",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCatalog(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.toml")
	require.NoError(t, os.WriteFile(path, []byte(toggleCatalog), 0o600))

	templates, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "Toggle", templates[0].Identifier())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
