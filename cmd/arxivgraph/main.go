// Package main provides the arxivgraph CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nkrishelie/arxiv-graph-viz/internal/config"
	"github.com/nkrishelie/arxiv-graph-viz/internal/logger"
	"github.com/nkrishelie/arxiv-graph-viz/internal/storage"
	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arxivgraph",
	Short: "Build a knowledge graph of recent arXiv mathematics",
	Long: `arxivgraph turns recent arXiv submissions into a force-graph document.

Workflow:
  arxivgraph init      # create .arxivgraph/ in the current directory
  arxivgraph ingest    # fetch the last few days of articles
  arxivgraph build     # write graph_data.json

Articles are stored in git-versionable JSONL with ephemeral SQLite for queries.
All commands output JSON by default; use --human for text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// .env may hold ARXIVGRAPH_WORKSPACE or ARXIVGRAPH_LOG_MODE.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustFindWorkspace finds the workspace root, exits on error.
func mustFindWorkspace() string {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	root, err := config.Locate(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}

// mustLoadConfig loads and validates configuration, exits on error.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		exitWithError(ExitConfigError, "invalid config: %v", err)
	}
	return cfg
}

// mustOpenDatabase opens the SQLite database, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase(root string) *storage.DB {
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustNewLogger builds the run logger, exits on error.
// The caller is responsible for calling Sync() on the returned logger.
func mustNewLogger(cfg *config.Config) *logger.Logger {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		exitWithError(ExitConfigError, "creating logger: %v", err)
	}
	return log
}

// newResolver wires the live page, the cache file and the built-in default.
// offline leaves the live source out.
func newResolver(root string, cfg *config.Config, log *logger.Logger, offline bool) *taxonomy.Resolver {
	r := &taxonomy.Resolver{
		Cache:   taxonomy.NewFileCache(config.ResolvePath(root, cfg.TaxonomyCache)),
		Default: taxonomy.Default(),
		Timeout: cfg.TaxonomyTimeout,
		Logger:  log,
	}
	if !offline {
		r.Fetcher = taxonomy.NewHTTPFetcher(cfg.TaxonomyURL)
	}
	return r
}
