package config

import (
	"fmt"
	"os"
)

const (
	// EnvWorkspace overrides workspace discovery.
	EnvWorkspace = "ARXIVGRAPH_WORKSPACE"
	// EnvLogMode overrides log_mode from config.yml.
	EnvLogMode = "ARXIVGRAPH_LOG_MODE"
)

// Locate returns the workspace root. ARXIVGRAPH_WORKSPACE wins over walking
// up from start; the directory it names must already be a workspace.
func Locate(start string) (string, error) {
	if root := os.Getenv(EnvWorkspace); root != "" {
		root = ExpandPath(root)
		if !IsWorkspace(root) {
			return "", fmt.Errorf("%w: %s=%s", ErrNotWorkspace, EnvWorkspace, root)
		}
		return root, nil
	}
	return FindWorkspace(start)
}

// ApplyEnv overlays environment overrides onto c.
func (c *Config) ApplyEnv() {
	if mode := os.Getenv(EnvLogMode); mode != "" {
		c.LogMode = mode
	}
}

// HelpfulConfigMessage returns a helpful message when no workspace is found.
func HelpfulConfigMessage() string {
	return fmt.Sprintf(`No arxivgraph workspace found.

Tip: run 'arxivgraph init' in the directory that should hold the graph,
or point %s at an existing workspace root.`, EnvWorkspace)
}
