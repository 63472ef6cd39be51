package scraper

import "context"

// Fetcher retrieves raw HTML from URLs. Only server-delivered HTML is
// supported; JavaScript-rendered content is out of scope.
type Fetcher interface {
	// Fetch retrieves the response body for the URL.
	// Returns EFETCH on transport failure or a non-success status.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
