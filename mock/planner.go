package mock

import (
	"context"

	scraper "github.com/jaanak9/dynamic-scraper-api"
)

var _ scraper.SelectorPlanner = (*SelectorPlanner)(nil)

// SelectorPlanner is a mock implementation of scraper.SelectorPlanner.
type SelectorPlanner struct {
	PlanFn func(ctx context.Context, structure *scraper.PageStructure, query string) ([]scraper.SelectorSpec, error)
}

func (p *SelectorPlanner) Plan(ctx context.Context, structure *scraper.PageStructure, query string) ([]scraper.SelectorSpec, error) {
	return p.PlanFn(ctx, structure, query)
}
