package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkrishelie/arxiv-graph-viz/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new arxivgraph workspace",
	Long: `Initialize a new arxivgraph workspace in the current directory.

Creates:
  .arxivgraph/
  ├── config.yml       # Default config
  ├── articles.jsonl   # Empty file
  └── cache/           # Empty directory (gitignored)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if config.IsWorkspace(root) {
		exitWithError(ExitError, "directory already contains an arxivgraph workspace")
	}

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating workspace directories: %v", err)
	}

	f, err := os.Create(config.ArticlesPath(root))
	if err != nil {
		exitWithError(ExitError, "creating %s: %v", config.ArticlesFile, err)
	}
	f.Close()

	if err := config.Default().Save(root); err != nil {
		exitWithError(ExitError, "creating %s: %v", config.ConfigFile, err)
	}

	if humanOutput {
		fmt.Printf("Initialized arxivgraph workspace in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
