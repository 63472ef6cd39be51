package slog

import (
	"context"
	"log/slog"
	"time"

	scraper "github.com/jaanak9/dynamic-scraper-api"
)

// Ensure LoggingExecutor implements scraper.ExtractionExecutor.
var _ scraper.ExtractionExecutor = (*LoggingExecutor)(nil)

// LoggingExecutor wraps an ExtractionExecutor with timing logs.
type LoggingExecutor struct {
	next   scraper.ExtractionExecutor
	logger *slog.Logger
}

// NewLoggingExecutor creates a new LoggingExecutor.
func NewLoggingExecutor(next scraper.ExtractionExecutor, logger *slog.Logger) *LoggingExecutor {
	return &LoggingExecutor{next: next, logger: logger}
}

// Execute delegates to the wrapped executor and logs the outcome.
func (e *LoggingExecutor) Execute(ctx context.Context, endpointID string) ([]scraper.ExtractionResult, error) {
	begin := time.Now()
	results, err := e.next.Execute(ctx, endpointID)
	if err != nil {
		e.logger.Error("extraction failed",
			"endpoint_id", endpointID,
			"code", scraper.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("extraction",
		"endpoint_id", endpointID,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}
