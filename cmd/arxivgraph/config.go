package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkrishelie/arxiv-graph-viz/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values in .arxivgraph/config.yml.

Usage:
  arxivgraph config                            # Show all config
  arxivgraph config fetch_days                 # Get specific value
  arxivgraph config fetch_days 7               # Set value
  arxivgraph config taxonomy-timeout 30s       # Dashes work too

Keys:
  analysis_period_days     Days of articles considered by build (365)
  top_limit_per_category   Articles kept per primary category (15)
  fetch_days               Days of submissions fetched by ingest (5)
  min_cooccurrence_weight  Minimum shared articles for a RELATED link (2)
  max_results              Upper bound on entries read by ingest (5000)
  taxonomy_cache           Cache file for the live taxonomy
  taxonomy_url             Live taxonomy page
  taxonomy_timeout         Timeout for the live taxonomy fetch (10s)
  arxiv_query              arXiv search query used by ingest (cat:math.*)
  output                   Graph document path (graph_data.json)
  log_mode                 dev or prod`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()

	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			vals := cfg.Values()
			for _, k := range config.Keys() {
				fmt.Printf("%-24s %s\n", k+":", vals[k])
			}
		} else {
			outputJSON(cfg.Values())
		}
		return nil
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		v, err := cfg.Get(key)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		if humanOutput {
			fmt.Println(v)
		} else {
			outputJSON(map[string]string{key: v})
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	if err := cfg.Set(key, value); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  value,
		})
	}

	return nil
}

// normalizeKey converts key formats (fetch-days, FETCH_DAYS) to the config.yml form.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "-", "_")
	return key
}
