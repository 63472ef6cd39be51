package mock

import (
	"context"

	scraper "github.com/jaanak9/dynamic-scraper-api"
)

var _ scraper.StructureAnalyzer = (*StructureAnalyzer)(nil)

// StructureAnalyzer is a mock implementation of scraper.StructureAnalyzer.
type StructureAnalyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*scraper.PageStructure, error)
}

func (a *StructureAnalyzer) Analyze(ctx context.Context, url string) (*scraper.PageStructure, error) {
	return a.AnalyzeFn(ctx, url)
}
