package renderer

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// A catalog file declares shape kinds as TOML tables:
//
//	[[shape]]
//	renderer = "Toggle"
//	width = 60.0
//	height = 30.0
//
//	[shape.appearance]
//	STATE = "On"
//
//	[[shape.configurable]]
//	name = "STATE"
//	kind = "selection"
//	options = ["On", "Off"]
type catalogFile struct {
	Shapes []*Template `toml:"shape"`
}

// LoadCatalog reads the shape templates declared in a TOML file.
func LoadCatalog(path string) ([]*Template, error) {
	var cfg catalogFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return checkCatalog(path, meta, cfg)
}

// DecodeCatalog reads the shape templates declared in TOML from r.
func DecodeCatalog(r io.Reader) ([]*Template, error) {
	var cfg catalogFile
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to parse TOML: %w", err)
	}
	return checkCatalog("catalog", meta, cfg)
}

func checkCatalog(name string, meta toml.MetaData, cfg catalogFile) ([]*Template, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", name, undecoded[0].String())
	}
	seen := make(map[string]bool, len(cfg.Shapes))
	for _, t := range cfg.Shapes {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if seen[t.Key] {
			return nil, fmt.Errorf("%s: renderer %q declared twice", name, t.Key)
		}
		seen[t.Key] = true
	}
	return cfg.Shapes, nil
}

// Register adds every template to s.
func Register(s *Service, templates []*Template) {
	for _, t := range templates {
		s.AddRenderer(t)
	}
}
