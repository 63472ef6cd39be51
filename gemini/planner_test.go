package gemini_test

import (
	"context"
	"testing"

	scraper "github.com/jaanak9/dynamic-scraper-api"
	"github.com/jaanak9/dynamic-scraper-api/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanner_Plan_ReturnsErrorWhenStructureNil(t *testing.T) {
	t.Parallel()

	planner := gemini.NewPlanner(nil, "") // nil client ok for this test

	_, err := planner.Plan(context.Background(), nil, "get list items")

	require.Error(t, err)
	assert.Equal(t, scraper.EINVALID, scraper.ErrorCode(err))
	assert.Contains(t, scraper.ErrorMessage(err), "structure required")
}

func TestPlanner_Plan_ReturnsErrorWhenQueryEmpty(t *testing.T) {
	t.Parallel()

	planner := gemini.NewPlanner(nil, "")

	_, err := planner.Plan(context.Background(), &scraper.PageStructure{}, "")

	require.Error(t, err)
	assert.Equal(t, scraper.EINVALID, scraper.ErrorCode(err))
	assert.Contains(t, scraper.ErrorMessage(err), "query required")
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	structure := &scraper.PageStructure{
		Title:    "Products",
		Headings: []string{"Featured"},
		Schema: scraper.PageSchema{
			Elements: map[string]scraper.ElementSummary{
				"product-card": {Count: 12, Sample: "Widget - $9.99"},
			},
			Lists:  []scraper.ListSummary{},
			Tables: []scraper.TableSummary{},
		},
	}

	prompt, err := gemini.BuildUserPrompt(structure, "get product names")
	require.NoError(t, err)

	assert.Contains(t, prompt, `"title": "Products"`)
	assert.Contains(t, prompt, "product-card")
	assert.Contains(t, prompt, "User Query:\nget product names")
	assert.Contains(t, prompt, `"preprocessing": []`)
	assert.Contains(t, prompt, `"selectors"`)
}

func TestParsePlan(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid payload", func(t *testing.T) {
		t.Parallel()

		raw := `{
			"selectors": [
				{"type": "css", "selector": ".product-card h2", "attribute": "text", "description": "product names"},
				{"type": "xpath", "selector": "\\$\\d+", "attribute": "text", "description": "prices"}
			],
			"preprocessing": [],
			"postprocessing": []
		}`

		selectors, err := gemini.ParsePlan([]byte(raw))
		require.NoError(t, err)
		require.Len(t, selectors, 2)

		assert.Equal(t, scraper.SelectorCSS, selectors[0].Kind)
		assert.Equal(t, ".product-card h2", selectors[0].Selector)
		assert.Equal(t, "text", selectors[0].Attribute)
		assert.Equal(t, "product names", selectors[0].Description)

		assert.Equal(t, scraper.SelectorXPath, selectors[1].Kind)
	})

	t.Run("accepts an empty selectors array", func(t *testing.T) {
		t.Parallel()

		selectors, err := gemini.ParsePlan([]byte(`{"selectors": [], "preprocessing": [], "postprocessing": []}`))
		require.NoError(t, err)
		assert.Empty(t, selectors)
	})

	t.Run("rejects non-JSON output", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParsePlan([]byte("here are your selectors:"))
		require.Error(t, err)
		assert.Equal(t, scraper.EINFERENCE, scraper.ErrorCode(err))
	})

	t.Run("rejects a payload without selectors", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParsePlan([]byte(`{"preprocessing": [], "postprocessing": []}`))
		require.Error(t, err)
		assert.Equal(t, scraper.EINFERENCE, scraper.ErrorCode(err))
		assert.Contains(t, scraper.ErrorMessage(err), "missing selectors")
	})

	t.Run("rejects an unknown selector kind", func(t *testing.T) {
		t.Parallel()

		raw := `{"selectors": [{"type": "jsonpath", "selector": "$", "attribute": "text", "description": "d"}]}`
		_, err := gemini.ParsePlan([]byte(raw))
		require.Error(t, err)
		assert.Equal(t, scraper.EINFERENCE, scraper.ErrorCode(err))
	})

	t.Run("rejects a selector with missing fields", func(t *testing.T) {
		t.Parallel()

		raw := `{"selectors": [{"type": "css", "attribute": "text", "description": "d"}]}`
		_, err := gemini.ParsePlan([]byte(raw))
		require.Error(t, err)
		assert.Equal(t, scraper.EINFERENCE, scraper.ErrorCode(err))
	})
}
