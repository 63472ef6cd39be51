// Package goquery implements structure analysis and extraction execution
// over parsed HTML documents using the goquery CSS selection API.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	scraper "github.com/jaanak9/dynamic-scraper-api"
)

// Ensure Analyzer implements scraper.StructureAnalyzer at compile time.
var _ scraper.StructureAnalyzer = (*Analyzer)(nil)

// Analyzer derives a PageStructure from a freshly fetched document.
// The parsed document is private to each Analyze call and discarded when
// the call returns.
type Analyzer struct {
	fetcher scraper.Fetcher
}

// NewAnalyzer creates a new Analyzer using the given fetcher.
func NewAnalyzer(fetcher scraper.Fetcher) *Analyzer {
	return &Analyzer{fetcher: fetcher}
}

// Analyze fetches the URL and computes its structural summary.
func (a *Analyzer) Analyze(ctx context.Context, url string) (*scraper.PageStructure, error) {
	html, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scraper.Errorf(scraper.EPARSE, "failed to parse HTML from %s: %v", url, err)
	}

	return &scraper.PageStructure{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Headings:    headings(doc),
		MainContent: mainContent(doc),
		Navigation:  navigation(doc),
		Schema:      pageSchema(doc),
	}, nil
}

// headings returns the text of every h1/h2/h3 element in document order.
func headings(doc *goquery.Document) []string {
	hs := []string{}
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		hs = append(hs, strings.TrimSpace(sel.Text()))
	})
	return hs
}

// mainContent returns the text of the page's main content area: an explicit
// main landmark or an element marked as main, falling back to the largest
// structural container by text length. Ties keep the first candidate in
// document order.
func mainContent(doc *goquery.Document) string {
	for _, selector := range []string{"main", "#main", ".main"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return strings.TrimSpace(sel.Text())
		}
	}

	var best *goquery.Selection
	bestLen := -1
	doc.Find("article, section, div").Each(func(_ int, sel *goquery.Selection) {
		if l := len(sel.Text()); l > bestLen {
			best, bestLen = sel, l
		}
	})
	if best == nil {
		return ""
	}
	return strings.TrimSpace(best.Text())
}

// navigation returns the anchors of the page's navigation area, or nil when
// the page has no recognizable navigation.
func navigation(doc *goquery.Document) []scraper.NavLink {
	for _, selector := range []string{"nav", ".navigation", "#navigation"} {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		links := []scraper.NavLink{}
		sel.Find("a").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			links = append(links, scraper.NavLink{
				Text: strings.TrimSpace(a.Text()),
				Href: href,
			})
		})
		return links
	}
	return nil
}

// pageSchema summarizes the document's classed elements, lists and tables.
func pageSchema(doc *goquery.Document) scraper.PageSchema {
	schema := scraper.PageSchema{
		Elements: map[string]scraper.ElementSummary{},
		Lists:    []scraper.ListSummary{},
		Tables:   []scraper.TableSummary{},
	}

	// Bucket classed elements by their first class token, keeping a text
	// sample from the first occurrence only.
	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		tokens := strings.Fields(class)
		if len(tokens) == 0 {
			return
		}
		name := tokens[0]
		if summary, ok := schema.Elements[name]; ok {
			summary.Count++
			schema.Elements[name] = summary
		} else {
			schema.Elements[name] = scraper.ElementSummary{
				Count:  1,
				Sample: truncateRunes(strings.TrimSpace(sel.Text()), 100),
			}
		}
	})

	doc.Find("ul, ol").Each(func(_ int, sel *goquery.Selection) {
		kind := scraper.ListUnordered
		if goquery.NodeName(sel) == "ol" {
			kind = scraper.ListOrdered
		}
		items := sel.Find("li")
		summary := scraper.ListSummary{Kind: kind, ItemCount: items.Length()}
		if items.Length() > 0 {
			summary.Sample = strings.TrimSpace(items.First().Text())
		}
		schema.Lists = append(schema.Lists, summary)
	})

	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		var hdrs []string
		sel.Find("th").Each(func(_ int, th *goquery.Selection) {
			hdrs = append(hdrs, strings.TrimSpace(th.Text()))
		})
		// The header row does not count as a data row.
		rows := sel.Find("tr").Length()
		if len(hdrs) > 0 {
			rows--
		}
		schema.Tables = append(schema.Tables, scraper.TableSummary{
			Headers:  hdrs,
			RowCount: rows,
		})
	})

	return schema
}

// truncateRunes truncates s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
