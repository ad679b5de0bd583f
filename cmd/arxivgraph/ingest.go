package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkrishelie/arxiv-graph-viz/internal/arxiv"
	"github.com/nkrishelie/arxiv-graph-viz/internal/config"
	"github.com/nkrishelie/arxiv-graph-viz/internal/pipeline"
)

var (
	ingestDays       int
	ingestMaxResults int
	ingestOffline    bool
)

func init() {
	ingestCmd.Flags().IntVar(&ingestDays, "days", 0, "Fetch articles submitted in the last N days (default: fetch_days from config)")
	ingestCmd.Flags().IntVar(&ingestMaxResults, "max-results", 0, "Upper bound on entries read from arXiv (default: max_results from config)")
	ingestCmd.Flags().BoolVar(&ingestOffline, "offline-taxonomy", false, "Resolve the taxonomy without the live page")
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch recent articles from arXiv",
	Long: `Fetch recently submitted articles from the arXiv API and merge them into
.arxivgraph/articles.jsonl.

An article already present has its title, categories and update time
refreshed; new articles are appended. Categories outside the resolved taxonomy
are dropped, and articles left without any category are skipped. The query
database is rebuilt afterwards.

Requests are paced at one every three seconds.

Examples:
  arxivgraph ingest
  arxivgraph ingest --days 14`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	log := mustNewLogger(cfg)
	defer log.Sync()

	days := cfg.FetchDays
	if ingestDays > 0 {
		days = ingestDays
	}
	maxResults := cfg.MaxResults
	if ingestMaxResults > 0 {
		maxResults = ingestMaxResults
	}

	db := mustOpenDatabase(root)
	defer db.Close()

	res, err := pipeline.Ingest(cmd.Context(),
		newResolver(root, cfg, log, ingestOffline),
		arxiv.NewClient(),
		db,
		pipeline.IngestOptions{
			FetchDays:    days,
			Query:        cfg.ArxivQuery,
			MaxResults:   maxResults,
			ArticlesPath: config.ArticlesPath(root),
		},
		log,
	)
	if err != nil {
		exitWithPipelineError("ingesting articles", err)
	}

	if humanOutput {
		fmt.Printf("Fetched %d articles: %d new, %d updated (%d total, taxonomy from %s)\n",
			res.Fetched, res.Added, res.Updated, res.Total, res.TaxonomySource)
	} else {
		outputJSON(res)
	}

	return nil
}
