package scraper

import "context"

// Selector kinds. SelectorXPath is a reduced stand-in for true path-based
// addressing: the selector string is treated as a regular expression matched
// against the document's text nodes, not as an XPath expression.
const (
	SelectorCSS   = "css"
	SelectorXPath = "xpath"
)

// AttributeText selects an element's trimmed text content rather than a
// named attribute.
const AttributeText = "text"

// SelectorSpec is a single extraction rule produced by the selector planner.
// Immutable once produced; it drives extraction for the lifetime of the
// owning endpoint.
type SelectorSpec struct {
	// Kind is SelectorCSS or SelectorXPath.
	Kind string `json:"type"`

	// Selector is a CSS selector (kind "css") or a text pattern (kind "xpath").
	Selector string `json:"selector"`

	// Attribute names what to read from a matched element: AttributeText for
	// the trimmed text content, otherwise an attribute name such as "href"
	// or "src".
	Attribute string `json:"attribute"`

	// Description is the planner's human-readable label for what this
	// selector extracts. It becomes the Type of every result it produces.
	Description string `json:"description"`
}

// Validate returns an error if the spec contains invalid fields. Planner
// output is untrusted, so every spec is validated on ingestion.
func (s *SelectorSpec) Validate() error {
	if s.Kind != SelectorCSS && s.Kind != SelectorXPath {
		return Errorf(EINVALID, "unknown selector kind %q", s.Kind)
	}
	if s.Selector == "" {
		return Errorf(EINVALID, "selector string required")
	}
	if s.Attribute == "" {
		return Errorf(EINVALID, "selector attribute required")
	}
	return nil
}

// SelectorPlanner turns a page structure and a natural language query into
// an ordered sequence of extraction rules.
type SelectorPlanner interface {
	// Plan invokes the inference service with the structure and query.
	// Returns EINFERENCE if the service is unreachable or its response does
	// not parse into the expected selector-list shape. No retry or repair of
	// malformed output is performed.
	Plan(ctx context.Context, structure *PageStructure, query string) ([]SelectorSpec, error)
}
