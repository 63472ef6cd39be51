package goquery_test

import (
	"context"
	"strings"
	"testing"

	scraper "github.com/jaanak9/dynamic-scraper-api"
	scrapergoquery "github.com/jaanak9/dynamic-scraper-api/goquery"
	"github.com/jaanak9/dynamic-scraper-api/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticFetcher returns a fetcher that serves the given HTML for any URL.
func staticFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) {
			return html, nil
		},
	}
}

func analyze(t *testing.T, html string) *scraper.PageStructure {
	t.Helper()

	a := scrapergoquery.NewAnalyzer(staticFetcher(html))
	structure, err := a.Analyze(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.NotNil(t, structure)
	return structure
}

func TestAnalyzer_Analyze_Title(t *testing.T) {
	t.Parallel()

	t.Run("extracts the document title", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><head><title>My Page</title></head><body></body></html>`)
		assert.Equal(t, "My Page", s.Title)
	})

	t.Run("empty when the document has no title", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><p>no title</p></body></html>`)
		assert.Equal(t, "", s.Title)
	})
}

func TestAnalyzer_Analyze_Headings(t *testing.T) {
	t.Parallel()

	s := analyze(t, `<html><body>
		<h1>First</h1>
		<h2>Second</h2>
		<h4>Skipped</h4>
		<h3>Third</h3>
	</body></html>`)

	assert.Equal(t, []string{"First", "Second", "Third"}, s.Headings)
}

func TestAnalyzer_Analyze_MainContent(t *testing.T) {
	t.Parallel()

	t.Run("prefers an explicit main landmark", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body>
			<div>a much much longer block of text than main has</div>
			<main>landmark text</main>
		</body></html>`)
		assert.Equal(t, "landmark text", s.MainContent)
	})

	t.Run("falls back to id and class markers", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><div id="main">marked by id</div></body></html>`)
		assert.Equal(t, "marked by id", s.MainContent)

		s = analyze(t, `<html><body><div class="main">marked by class</div></body></html>`)
		assert.Equal(t, "marked by class", s.MainContent)
	})

	t.Run("falls back to the largest structural container", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body>
			<article>short</article>
			<section>this section has the longest text content of all</section>
			<div>medium length text here</div>
		</body></html>`)
		assert.Contains(t, s.MainContent, "longest text content")
	})

	t.Run("empty when no content exists", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body></body></html>`)
		assert.Equal(t, "", s.MainContent)
	})
}

func TestAnalyzer_Analyze_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("extracts anchors from a nav landmark in document order", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><nav>
			<a href="/home">Home</a>
			<a href="/about">About</a>
		</nav></body></html>`)

		require.Len(t, s.Navigation, 2)
		assert.Equal(t, scraper.NavLink{Text: "Home", Href: "/home"}, s.Navigation[0])
		assert.Equal(t, scraper.NavLink{Text: "About", Href: "/about"}, s.Navigation[1])
	})

	t.Run("recognizes navigation class and id markers", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><div class="navigation"><a href="/x">X</a></div></body></html>`)
		require.Len(t, s.Navigation, 1)
		assert.Equal(t, "/x", s.Navigation[0].Href)

		s = analyze(t, `<html><body><div id="navigation"><a href="/y">Y</a></div></body></html>`)
		require.Len(t, s.Navigation, 1)
		assert.Equal(t, "/y", s.Navigation[0].Href)
	})

	t.Run("absent when the page has no navigation", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><p>nothing here</p></body></html>`)
		assert.Nil(t, s.Navigation)
	})
}

func TestAnalyzer_Analyze_Schema(t *testing.T) {
	t.Parallel()

	t.Run("empty for a page with no classed elements, lists or tables", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><p>plain</p></body></html>`)

		assert.Empty(t, s.Schema.Elements)
		assert.Empty(t, s.Schema.Lists)
		assert.Empty(t, s.Schema.Tables)
	})

	t.Run("buckets classed elements by first class token", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body>
			<div class="card featured">first card</div>
			<div class="card">second card</div>
			<span class="badge">new</span>
		</body></html>`)

		require.Len(t, s.Schema.Elements, 2)
		assert.Equal(t, 2, s.Schema.Elements["card"].Count)
		assert.Equal(t, "first card", s.Schema.Elements["card"].Sample)
		assert.Equal(t, 1, s.Schema.Elements["badge"].Count)
	})

	t.Run("truncates element samples to 100 runes", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("é", 150)
		s := analyze(t, `<html><body><div class="long">`+long+`</div></body></html>`)

		sample := s.Schema.Elements["long"].Sample
		assert.Equal(t, 100, len([]rune(sample)))
	})

	t.Run("summarizes ordered and unordered lists", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body>
			<ul><li>A</li><li>B</li></ul>
			<ol><li>1</li><li>2</li><li>3</li></ol>
			<ul></ul>
		</body></html>`)

		require.Len(t, s.Schema.Lists, 3)
		assert.Equal(t, scraper.ListSummary{Kind: scraper.ListUnordered, ItemCount: 2, Sample: "A"}, s.Schema.Lists[0])
		assert.Equal(t, scraper.ListSummary{Kind: scraper.ListOrdered, ItemCount: 3, Sample: "1"}, s.Schema.Lists[1])
		assert.Equal(t, scraper.ListSummary{Kind: scraper.ListUnordered, ItemCount: 0}, s.Schema.Lists[2])
	})

	t.Run("table row count excludes the header row when headers exist", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><table>
			<tr><th>Name</th><th>Price</th></tr>
			<tr><td>Widget</td><td>9.99</td></tr>
			<tr><td>Gadget</td><td>19.99</td></tr>
		</table></body></html>`)

		require.Len(t, s.Schema.Tables, 1)
		assert.Equal(t, []string{"Name", "Price"}, s.Schema.Tables[0].Headers)
		assert.Equal(t, 2, s.Schema.Tables[0].RowCount)
	})

	t.Run("table row count keeps all rows without headers", func(t *testing.T) {
		t.Parallel()
		s := analyze(t, `<html><body><table>
			<tr><td>a</td></tr>
			<tr><td>b</td></tr>
		</table></body></html>`)

		require.Len(t, s.Schema.Tables, 1)
		assert.Empty(t, s.Schema.Tables[0].Headers)
		assert.Equal(t, 2, s.Schema.Tables[0].RowCount)
	})
}

func TestAnalyzer_Analyze_EndToEnd(t *testing.T) {
	t.Parallel()

	s := analyze(t, `<html><head><title>T</title></head><body><main><h1>Hi</h1><ul><li>A</li><li>B</li></ul></main></body></html>`)

	assert.Equal(t, "T", s.Title)
	assert.Equal(t, []string{"Hi"}, s.Headings)
	assert.Contains(t, s.MainContent, "Hi")
	assert.Equal(t, []scraper.ListSummary{
		{Kind: scraper.ListUnordered, ItemCount: 2, Sample: "A"},
	}, s.Schema.Lists)
}

func TestAnalyzer_Analyze_PropagatesFetchError(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) {
			return "", scraper.Errorf(scraper.EFETCH, "HTTP 500 for https://example.com")
		},
	}

	a := scrapergoquery.NewAnalyzer(fetcher)
	_, err := a.Analyze(context.Background(), "https://example.com")

	require.Error(t, err)
	assert.Equal(t, scraper.EFETCH, scraper.ErrorCode(err))
}

func TestAnalyzer_Analyze_ToleratesMalformedHTML(t *testing.T) {
	t.Parallel()

	// html parsing is lenient: unclosed tags and stray markup still produce
	// a document rather than an error.
	s := analyze(t, `<html><body><div class="a">unclosed <ul><li>item`)

	assert.Equal(t, 1, s.Schema.Elements["a"].Count)
	require.Len(t, s.Schema.Lists, 1)
	assert.Equal(t, 1, s.Schema.Lists[0].ItemCount)
}
