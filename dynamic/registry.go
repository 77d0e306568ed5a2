package dynamic

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/gear-tech/scale/errors"
	"github.com/gear-tech/scale/shape"
)

// Registry maps type names to concrete shapes for decode-by-name. Shapes
// are registered once at startup and looked up concurrently afterwards.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]*shape.Shape
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]*shape.Shape)}
}

// Register installs a concrete shape under name. Generic definitions must
// be instantiated first; duplicate names are rejected.
func (reg *Registry) Register(name string, s *shape.Shape) error {
	if s.HasParams() {
		return errors.Registration(name, "shape has unresolved type parameters; register instantiations instead")
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, dup := reg.shapes[name]; dup {
		return errors.Registration(name, "already registered")
	}
	reg.shapes[name] = s

	Logger().Debug("registered shape",
		zap.String("name", name),
		zap.String("shape", s.String()),
	)
	return nil
}

// Lookup returns the shape registered under name.
func (reg *Registry) Lookup(name string) (*shape.Shape, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	s, ok := reg.shapes[name]
	return s, ok
}

// Names returns all registered type names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.shapes))
	for name := range reg.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeAs decodes data against the shape registered under typeName,
// requiring full consumption of the buffer.
func (reg *Registry) DecodeAs(data []byte, typeName string) (Value, error) {
	s, ok := reg.Lookup(typeName)
	if !ok {
		return nil, errors.NotFound("type", typeName)
	}
	return Decode(data, s)
}
