package scraper

import "context"

// ExtractionResult is a single extracted value. Type carries the description
// of the selector that produced the value.
type ExtractionResult struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ExtractionExecutor replays a registered endpoint against a fresh fetch of
// its target page.
type ExtractionExecutor interface {
	// Execute resolves the endpoint, re-fetches and re-parses its URL, and
	// applies each selector in order. Matched elements that yield an empty
	// value contribute no result; a selector that matches nothing is not an
	// error. Results are never cached.
	//
	// Returns ENOTFOUND if the id is unregistered; EFETCH/EPARSE propagate
	// from re-fetching the target URL.
	Execute(ctx context.Context, endpointID string) ([]ExtractionResult, error)
}
