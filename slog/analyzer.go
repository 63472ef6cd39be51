// Package slog provides logging decorators for the scraper's services.
package slog

import (
	"context"
	"log/slog"
	"time"

	scraper "github.com/jaanak9/dynamic-scraper-api"
)

// Ensure LoggingAnalyzer implements scraper.StructureAnalyzer.
var _ scraper.StructureAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a StructureAnalyzer with timing logs.
type LoggingAnalyzer struct {
	next   scraper.StructureAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next scraper.StructureAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string) (*scraper.PageStructure, error) {
	begin := time.Now()
	structure, err := a.next.Analyze(ctx, url)
	if err != nil {
		a.logger.Error("structure analysis failed",
			"url", url,
			"code", scraper.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	a.logger.Info("structure analysis",
		"url", url,
		"headings", len(structure.Headings),
		"classed_elements", len(structure.Schema.Elements),
		"lists", len(structure.Schema.Lists),
		"tables", len(structure.Schema.Tables),
		"duration", time.Since(begin),
	)
	return structure, nil
}
