// Package gemini implements selector planning using Google Gemini as the
// semantic-inference service.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	scraper "github.com/jaanak9/dynamic-scraper-api"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Planner implements scraper.SelectorPlanner at compile time.
var _ scraper.SelectorPlanner = (*Planner)(nil)

// Planner implements scraper.SelectorPlanner using Google Gemini.
type Planner struct {
	client *genai.Client
	model  string
}

// NewPlanner creates a new Planner. An empty model selects DefaultModel.
func NewPlanner(client *genai.Client, model string) *Planner {
	if model == "" {
		model = DefaultModel
	}
	return &Planner{client: client, model: model}
}

// Plan asks the model for extraction selectors matching the structure and
// query. The model's output is untrusted: it must parse as a single JSON
// object with a selectors array, and every selector must validate. Malformed
// output is a hard failure; no repair is attempted.
func (p *Planner) Plan(ctx context.Context, structure *scraper.PageStructure, query string) ([]scraper.SelectorSpec, error) {
	if structure == nil {
		return nil, scraper.Errorf(scraper.EINVALID, "page structure required")
	}
	if query == "" {
		return nil, scraper.Errorf(scraper.EINVALID, "query required")
	}

	prompt, err := BuildUserPrompt(structure, query)
	if err != nil {
		return nil, err
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, scraper.Errorf(scraper.EINFERENCE, "inference request failed: %v", err)
	}
	if result == nil {
		return nil, scraper.Errorf(scraper.EINFERENCE, "inference service returned nil result")
	}

	return ParsePlan([]byte(result.Text()))
}

// BuildConfig returns the GenerateContentConfig for selector planning calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert in web scraping and API development.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the prompt containing the serialized page structure
// and the user query.
func BuildUserPrompt(structure *scraper.PageStructure, query string) (string, error) {
	serialized, err := json.MarshalIndent(structure, "", "  ")
	if err != nil {
		return "", scraper.Errorf(scraper.EINTERNAL, "failed to serialize page structure: %v", err)
	}

	return fmt.Sprintf(`Given the following webpage structure and user query, generate appropriate CSS/XPath selectors.

Webpage Structure:
%s

User Query:
%s

Return only a JSON object with the following structure:
{
  "selectors": [
    {
      "type": "css|xpath",
      "selector": "string",
      "attribute": "text|href|src|etc",
      "description": "what this selector extracts"
    }
  ],
  "preprocessing": [],
  "postprocessing": []
}`, serialized, query), nil
}

// planPayload is the expected shape of the model's response. The
// pre/post-processing arrays are placeholders reserved for future use and
// are accepted but ignored.
type planPayload struct {
	Selectors      []scraper.SelectorSpec `json:"selectors"`
	Preprocessing  []json.RawMessage      `json:"preprocessing"`
	Postprocessing []json.RawMessage      `json:"postprocessing"`
}

// ParsePlan parses and validates a raw model response into the selector
// sequence. Returns EINFERENCE on any deviation from the expected shape.
func ParsePlan(raw []byte) ([]scraper.SelectorSpec, error) {
	var payload planPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, scraper.Errorf(scraper.EINFERENCE, "inference response is not valid JSON: %v", err)
	}
	if payload.Selectors == nil {
		return nil, scraper.Errorf(scraper.EINFERENCE, "inference response missing selectors array")
	}
	for i := range payload.Selectors {
		if err := payload.Selectors[i].Validate(); err != nil {
			return nil, scraper.Errorf(scraper.EINFERENCE, "invalid selector at index %d: %s", i, scraper.ErrorMessage(err))
		}
	}
	return payload.Selectors, nil
}
