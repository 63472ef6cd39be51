package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// EndpointConfig is the replayable extraction configuration registered for a
// (url, query) pair. Created exactly once per pair at endpoint-generation
// time; immutable; owned by the registry.
type EndpointConfig struct {
	URL        string             `json:"url"`
	Query      string             `json:"query"`
	Selectors  []SelectorSpec     `json:"selectors"`
	Method     string             `json:"method"`
	Parameters EndpointParameters `json:"parameters"`
}

// EndpointParameters carries response-shaping parameters. CacheTimeout is
// recorded for API compatibility but not acted on: every replay re-fetches.
type EndpointParameters struct {
	Format       string `json:"format"`
	CacheTimeout int    `json:"cache_timeout"`
}

// Defaults for newly registered endpoints.
const (
	DefaultFormat       = "json"
	DefaultCacheTimeout = 3600
)

// Validate returns an error if the config contains invalid fields.
func (c *EndpointConfig) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "endpoint URL required")
	}
	if c.Query == "" {
		return Errorf(EINVALID, "endpoint query required")
	}
	for i := range c.Selectors {
		if err := c.Selectors[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// NewEndpointID derives the deterministic registry key for a (url, query)
// pair: the URL minus its scheme with every non-alphanumeric character
// replaced by an underscore, followed by a stable fingerprint of the query
// reduced to 0-9999.
//
// Distinct queries can collide in the reduced fingerprint space, in which
// case a later registration silently overwrites the earlier one. This is a
// known limitation, kept for endpoint-path stability.
func NewEndpointID(url, query string) string {
	base := url
	if i := strings.Index(base, "//"); i >= 0 {
		base = base[i+2:]
	}
	base = nonAlphanumeric.ReplaceAllString(base, "_")
	return fmt.Sprintf("scrape_%s_%d", base, xxhash.Sum64String(query)%10000)
}

// EndpointRegistry stores endpoint configurations keyed by endpoint ID.
// Implementations must be safe for concurrent use.
type EndpointRegistry interface {
	// Register derives the endpoint ID for (url, query), stores a new
	// EndpointConfig under it and returns both. A registration for an
	// already-known ID overwrites the previous configuration.
	Register(url, query string, selectors []SelectorSpec) (string, *EndpointConfig, error)

	// Resolve returns the configuration registered under id.
	// Returns ENOTFOUND if the id is unknown.
	Resolve(id string) (*EndpointConfig, error)

	// Contains reports whether id is registered.
	Contains(id string) bool
}
