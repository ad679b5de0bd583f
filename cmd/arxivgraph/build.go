package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nkrishelie/arxiv-graph-viz/internal/config"
	"github.com/nkrishelie/arxiv-graph-viz/internal/pipeline"
)

var (
	buildOutput  string
	buildOffline bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file path (default: output from config)")
	buildCmd.Flags().BoolVar(&buildOffline, "offline-taxonomy", false, "Resolve the taxonomy without the live page")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the knowledge graph document",
	Long: `Build the force-graph document from the stored articles.

The query database is first reloaded from articles.jsonl. The taxonomy is
resolved (live page, cache, built-in default) and the top articles per
primary category over the analysis period are linked to their disciplines,
to each other through shared authors, and disciplines to each other through
co-occurrence.

The document is written atomically; a failed build leaves any previous file
untouched.

Examples:
  arxivgraph build
  arxivgraph build -o public/graph_data.json`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	log := mustNewLogger(cfg)
	defer log.Sync()

	output := cfg.Output
	if buildOutput != "" {
		output = buildOutput
	}

	db := mustOpenDatabase(root)
	defer db.Close()

	if _, err := db.RebuildFromJSONL(config.ArticlesPath(root)); err != nil {
		exitWithError(ExitDataError, "loading articles: %v", err)
	}

	res, err := pipeline.Build(cmd.Context(),
		newResolver(root, cfg, log, buildOffline),
		db,
		pipeline.BuildOptions{
			AnalysisPeriodDays:    cfg.AnalysisPeriodDays,
			TopLimitPerCategory:   cfg.TopLimitPerCategory,
			MinCoOccurrenceWeight: cfg.MinCoOccurrenceWeight,
			Output:                config.ResolvePath(root, output),
		},
		log,
	)
	if err != nil {
		exitWithPipelineError("building graph", err)
	}

	if humanOutput {
		fmt.Printf("Wrote %s: %d nodes, %d links (taxonomy from %s, %d categories)\n",
			res.Output, res.Stats.Nodes, res.Stats.Links, res.TaxonomySource, res.TaxonomySize)
		fmt.Printf("%d papers stored since %s\n", res.TotalPapers, res.Since)
		printCounts("nodes", res.Stats.NodesByType)
		printCounts("links", res.Stats.LinksByType)
	} else {
		outputJSON(res)
	}

	return nil
}

// printCounts prints a per-type breakdown in a stable order.
func printCounts[K ~string](title string, counts map[K]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	fmt.Printf("  %s:\n", title)
	for _, k := range keys {
		fmt.Printf("    %-20s %d\n", k, counts[K(k)])
	}
}
