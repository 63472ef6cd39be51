// Package inmem provides in-memory implementations with process-lifetime
// scope. Nothing here survives a restart.
package inmem

import (
	"sync"

	scraper "github.com/jaanak9/dynamic-scraper-api"
)

// Ensure Registry implements scraper.EndpointRegistry at compile time.
var _ scraper.EndpointRegistry = (*Registry)(nil)

// Registry is a mutex-guarded in-memory endpoint registry. It is unbounded
// and safe for concurrent use. Endpoint IDs are collision-prone by
// construction; a registration for an existing ID overwrites it
// (last write wins).
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]*scraper.EndpointConfig
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[string]*scraper.EndpointConfig)}
}

// Register stores a new endpoint configuration for (url, query) and returns
// its deterministic ID along with the stored configuration.
func (r *Registry) Register(url, query string, selectors []scraper.SelectorSpec) (string, *scraper.EndpointConfig, error) {
	config := &scraper.EndpointConfig{
		URL:       url,
		Query:     query,
		Selectors: selectors,
		Method:    "GET",
		Parameters: scraper.EndpointParameters{
			Format:       scraper.DefaultFormat,
			CacheTimeout: scraper.DefaultCacheTimeout,
		},
	}
	if err := config.Validate(); err != nil {
		return "", nil, err
	}

	id := scraper.NewEndpointID(url, query)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints[id] = config

	return id, config, nil
}

// Resolve returns the configuration registered under id.
func (r *Registry) Resolve(id string) (*scraper.EndpointConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, ok := r.endpoints[id]
	if !ok {
		return nil, scraper.Errorf(scraper.ENOTFOUND, "endpoint %q not found", id)
	}
	return config, nil
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.endpoints[id]
	return ok
}
