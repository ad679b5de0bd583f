package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkrishelie/arxiv-graph-viz/internal/config"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query layer from source data",
	Long: `Rebuild the SQLite query database from the JSONL source file.

Use this after pulling changes from git or if the database becomes corrupted.`,
	Args: cobra.NoArgs,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status   string `json:"status"`
	Articles int    `json:"articles"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()

	db := mustOpenDatabase(root)
	defer db.Close()

	n, err := db.RebuildFromJSONL(config.ArticlesPath(root))
	if err != nil {
		exitWithError(ExitDataError, "rebuilding articles database: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt query database with %d articles\n", n)
	} else {
		outputJSON(RebuildResult{
			Status:   "rebuilt",
			Articles: n,
		})
	}

	return nil
}
