// Command scraperd runs the dynamic scraper API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jaanak9/dynamic-scraper-api/gemini"
	scrapergoquery "github.com/jaanak9/dynamic-scraper-api/goquery"
	scraperhttp "github.com/jaanak9/dynamic-scraper-api/http"
	"github.com/jaanak9/dynamic-scraper-api/inmem"
	"github.com/jaanak9/dynamic-scraper-api/lru"
	scraperslog "github.com/jaanak9/dynamic-scraper-api/slog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line flags for Kong. Every flag can also be set
// through its environment variable.
type CLI struct {
	Addr         string        `default:":8080" env:"SCRAPER_ADDR" help:"HTTP listen address"`
	CacheSize    int           `default:"100" env:"SCRAPER_CACHE_SIZE" help:"Schema cache capacity in distinct URLs"`
	Model        string        `env:"SCRAPER_MODEL" help:"Gemini model used for selector planning"`
	FetchTimeout time.Duration `default:"10s" env:"SCRAPER_FETCH_TIMEOUT" help:"Timeout for outbound page fetches"`
	GeminiAPIKey string        `env:"GEMINI_API_KEY" help:"Gemini API key"`
}

// Main represents the program.
type Main struct {
	// Registry is exposed for end-to-end testing.
	Registry *inmem.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run wires the services and serves the API until the context is canceled.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scraperd"),
		kong.Description("Dynamic scraper API server."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.GeminiAPIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	fetcher := scraperhttp.NewFetcher(scraperhttp.WithTimeout(cli.FetchTimeout))
	defer fetcher.Close()

	analyzer := scraperslog.NewLoggingAnalyzer(scrapergoquery.NewAnalyzer(fetcher), logger)
	structures, err := lru.NewStructureCache(analyzer, cli.CacheSize)
	if err != nil {
		return fmt.Errorf("failed to create schema cache: %w", err)
	}

	m.Registry = inmem.NewRegistry()
	planner := gemini.NewPlanner(client, cli.Model)
	executor := scraperslog.NewLoggingExecutor(
		scrapergoquery.NewExecutor(fetcher, m.Registry), logger)

	srv := &http.Server{
		Addr:    cli.Addr,
		Handler: scraperhttp.NewServer(structures, planner, m.Registry, executor, logger),
	}

	logger.Info("starting server", "addr", cli.Addr, "cache_size", cli.CacheSize)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
