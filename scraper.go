// Package scraper provides an adaptive web-extraction engine. Given a URL
// and a natural language query it derives a structural summary of the page,
// asks a semantic-inference service to turn that summary plus the query into
// concrete extraction selectors, and registers the result as a named,
// replayable endpoint that re-fetches the page on every invocation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, lru/).
package scraper
