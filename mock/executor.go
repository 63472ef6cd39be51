package mock

import (
	"context"

	scraper "github.com/jaanak9/dynamic-scraper-api"
)

var _ scraper.ExtractionExecutor = (*ExtractionExecutor)(nil)

// ExtractionExecutor is a mock implementation of scraper.ExtractionExecutor.
type ExtractionExecutor struct {
	ExecuteFn func(ctx context.Context, endpointID string) ([]scraper.ExtractionResult, error)
}

func (e *ExtractionExecutor) Execute(ctx context.Context, endpointID string) ([]scraper.ExtractionResult, error) {
	return e.ExecuteFn(ctx, endpointID)
}
