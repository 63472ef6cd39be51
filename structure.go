package scraper

import "context"

// PageStructure is a structural summary of a fetched HTML document. It is
// what the selector planner sends to the inference service so the service can
// reason about the page without seeing the raw markup. Immutable once built.
type PageStructure struct {
	// Title is the document title, empty when the page has none.
	Title string `json:"title,omitempty"`

	// Headings holds the text of every h1/h2/h3 element in document order.
	Headings []string `json:"headings"`

	// MainContent is the text of the page's main content area: an explicit
	// main landmark when present, otherwise the largest structural container
	// by text length. Empty when neither yields text.
	MainContent string `json:"main_content,omitempty"`

	// Navigation lists the anchors of the page's navigation area in document
	// order. Nil when the page has no recognizable navigation.
	Navigation []NavLink `json:"navigation,omitempty"`

	// Schema summarizes the page's classed elements, lists and tables.
	Schema PageSchema `json:"schema"`
}

// NavLink is a single navigation anchor.
type NavLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PageSchema summarizes the repeated structural features of a document.
type PageSchema struct {
	// Elements maps the first class token of each classed element to its
	// occurrence count and a text sample from the first occurrence.
	Elements map[string]ElementSummary `json:"elements"`

	// Lists describes every ordered/unordered list in document order.
	Lists []ListSummary `json:"lists"`

	// Tables describes every table in document order.
	Tables []TableSummary `json:"tables"`
}

// ElementSummary aggregates the elements sharing a leading class token.
type ElementSummary struct {
	Count int `json:"count"`

	// Sample is the text of the first element seen, truncated to 100 runes.
	Sample string `json:"sample"`
}

// List kinds reported in ListSummary.
const (
	ListOrdered   = "ordered"
	ListUnordered = "unordered"
)

// ListSummary describes a single list element.
type ListSummary struct {
	Kind      string `json:"kind"`
	ItemCount int    `json:"item_count"`

	// Sample is the text of the first list item, empty for empty lists.
	Sample string `json:"sample,omitempty"`
}

// TableSummary describes a single table element.
type TableSummary struct {
	Headers []string `json:"headers"`

	// RowCount excludes the header row when header cells are present.
	RowCount int `json:"row_count"`
}

// StructureAnalyzer computes a PageStructure for a URL.
type StructureAnalyzer interface {
	// Analyze fetches the URL and derives its structural summary.
	// Returns EFETCH if the page cannot be retrieved and EPARSE if the
	// response cannot be parsed as HTML.
	Analyze(ctx context.Context, url string) (*PageStructure, error)
}
