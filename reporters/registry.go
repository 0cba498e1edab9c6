package reporters

import (
	"fmt"
	"sync"
)

// Factory builds a custom reporter sink from its compiled filter set.
type Factory func(filters FilterSet) (Reporter, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a custom reporter available under name. Legacy deployments
// loaded reporter classes reflectively from the runpath; here -r values
// resolve through this explicit registry, so each must name a registered
// factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

func newCustom(cfg CustomConfig) (Reporter, error) {
	registryMu.RLock()
	factory, ok := registry[cfg.Name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no reporter registered under name %q", cfg.Name)
	}
	return factory(cfg.Filters)
}
