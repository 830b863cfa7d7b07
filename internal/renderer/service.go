// Package renderer maps renderer keys to the shape plugins that create and
// interpret shapes of that kind.
package renderer

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/inamate/wireframe/backend-go/internal/model"
)

var ErrNotFound = errors.New("renderer not found")

// Plugin is a shape kind. Identifier is the stable renderer key stored in
// documents; CreateDefaultShape builds a shape with the kind's default
// geometry, appearance and configurables.
type Plugin interface {
	Identifier() string
	CreateDefaultShape(id string) *model.Shape
}

// Service is the renderer registry. It is safe for concurrent use so one
// registry can back every editing session of a server.
type Service struct {
	mu        sync.RWMutex
	renderers map[string]Plugin
}

func NewService() *Service {
	return &Service{renderers: make(map[string]Plugin)}
}

// NewDefaultService returns a registry with the built-in plugins.
func NewDefaultService() *Service {
	s := NewService()
	for _, p := range Builtins() {
		s.AddRenderer(p)
	}
	return s
}

// AddRenderer registers p under its identifier, replacing any plugin
// registered under the same key.
func (s *Service) AddRenderer(p Plugin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderers[p.Identifier()] = p
}

func (s *Service) RegisteredRenderer(key string) (Plugin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.renderers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return p, nil
}

// Renderers returns the registered keys, sorted.
func (s *Service) Renderers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.renderers))
	for k := range s.renderers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
