package mock

import (
	scraper "github.com/jaanak9/dynamic-scraper-api"
)

var _ scraper.EndpointRegistry = (*EndpointRegistry)(nil)

// EndpointRegistry is a mock implementation of scraper.EndpointRegistry.
type EndpointRegistry struct {
	RegisterFn func(url, query string, selectors []scraper.SelectorSpec) (string, *scraper.EndpointConfig, error)
	ResolveFn  func(id string) (*scraper.EndpointConfig, error)
	ContainsFn func(id string) bool
}

func (r *EndpointRegistry) Register(url, query string, selectors []scraper.SelectorSpec) (string, *scraper.EndpointConfig, error) {
	return r.RegisterFn(url, query, selectors)
}

func (r *EndpointRegistry) Resolve(id string) (*scraper.EndpointConfig, error) {
	return r.ResolveFn(id)
}

func (r *EndpointRegistry) Contains(id string) bool {
	return r.ContainsFn(id)
}
