package goquery

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	scraper "github.com/jaanak9/dynamic-scraper-api"
	"golang.org/x/net/html"
)

// Ensure Executor implements scraper.ExtractionExecutor at compile time.
var _ scraper.ExtractionExecutor = (*Executor)(nil)

// Executor replays registered endpoints. Every execution fetches and parses
// the target URL fresh; it never reuses a cached structure analysis.
type Executor struct {
	fetcher  scraper.Fetcher
	registry scraper.EndpointRegistry
}

// NewExecutor creates a new Executor.
func NewExecutor(fetcher scraper.Fetcher, registry scraper.EndpointRegistry) *Executor {
	return &Executor{fetcher: fetcher, registry: registry}
}

// Execute resolves the endpoint and applies its selectors in order against a
// fresh fetch of the target page. Matched elements yielding empty values are
// dropped silently.
func (e *Executor) Execute(ctx context.Context, endpointID string) ([]scraper.ExtractionResult, error) {
	config, err := e.registry.Resolve(endpointID)
	if err != nil {
		return nil, err
	}

	raw, err := e.fetcher.Fetch(ctx, config.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, scraper.Errorf(scraper.EPARSE, "failed to parse HTML from %s: %v", config.URL, err)
	}

	results := []scraper.ExtractionResult{}
	for _, spec := range config.Selectors {
		switch spec.Kind {
		case scraper.SelectorCSS:
			doc.Find(spec.Selector).Each(func(_ int, sel *goquery.Selection) {
				if value := elementValue(sel, spec.Attribute); value != "" {
					results = append(results, scraper.ExtractionResult{
						Type:  spec.Description,
						Value: value,
					})
				}
			})
		case scraper.SelectorXPath:
			// The "xpath" kind is a reduced stand-in for path addressing:
			// the selector is a pattern matched against text nodes.
			matched, err := matchTextNodes(doc, spec)
			if err != nil {
				return nil, err
			}
			results = append(results, matched...)
		default:
			return nil, scraper.Errorf(scraper.EINVALID, "unknown selector kind %q", spec.Kind)
		}
	}

	return results, nil
}

// elementValue reads the requested attribute from a matched element:
// the trimmed text content for AttributeText, the named attribute otherwise.
func elementValue(sel *goquery.Selection, attribute string) string {
	if attribute == scraper.AttributeText {
		return strings.TrimSpace(sel.Text())
	}
	value, _ := sel.Attr(attribute)
	return value
}

// matchTextNodes applies a pattern selector to every text node in the
// document. Attribute reads other than text resolve against the node's
// parent element.
func matchTextNodes(doc *goquery.Document, spec scraper.SelectorSpec) ([]scraper.ExtractionResult, error) {
	pattern, err := regexp.Compile(spec.Selector)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINVALID, "invalid text pattern %q: %v", spec.Selector, err)
	}

	var results []scraper.ExtractionResult
	for _, root := range doc.Nodes {
		for n := range root.Descendants() {
			if n.Type != html.TextNode || !pattern.MatchString(n.Data) {
				continue
			}
			if value := textNodeValue(n, spec.Attribute); value != "" {
				results = append(results, scraper.ExtractionResult{
					Type:  spec.Description,
					Value: value,
				})
			}
		}
	}
	return results, nil
}

func textNodeValue(n *html.Node, attribute string) string {
	if attribute == scraper.AttributeText {
		return strings.TrimSpace(n.Data)
	}
	parent := n.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return ""
	}
	for _, attr := range parent.Attr {
		if attr.Key == attribute {
			return attr.Val
		}
	}
	return ""
}
