// Package config handles workspace layout and configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WorkspaceDir      = ".arxivgraph"
	ConfigFile        = "config.yml"
	ArticlesFile      = "articles.jsonl"
	TaxonomyCacheFile = "taxonomy_cache.json"
	CacheDir          = "cache"
	DBFile            = "articles.db"
)

// ErrNotWorkspace is returned when no .arxivgraph directory can be found.
var ErrNotWorkspace = errors.New("not in an arxivgraph workspace (no .arxivgraph directory found)")

// Config represents workspace configuration stored in .arxivgraph/config.yml.
type Config struct {
	AnalysisPeriodDays    int           `yaml:"analysis_period_days"`    // Window for ranking and co-occurrence
	TopLimitPerCategory   int           `yaml:"top_limit_per_category"`  // Articles kept per primary category
	FetchDays             int           `yaml:"fetch_days"`              // Window for ingest
	MinCoOccurrenceWeight int           `yaml:"min_cooccurrence_weight"` // Pairs below this are noise
	TaxonomyCache         string        `yaml:"taxonomy_cache"`          // Relative to the workspace root
	TaxonomyURL           string        `yaml:"taxonomy_url"`
	TaxonomyTimeout       time.Duration `yaml:"taxonomy_timeout"`
	ArxivQuery            string        `yaml:"arxiv_query"`
	MaxResults            int           `yaml:"max_results"`
	Output                string        `yaml:"output"` // Relative to the workspace root
	LogMode               string        `yaml:"log_mode"`
}

// Default returns the configuration used when config.yml is absent or silent.
func Default() *Config {
	return &Config{
		AnalysisPeriodDays:    365,
		TopLimitPerCategory:   15,
		FetchDays:             5,
		MinCoOccurrenceWeight: 2,
		TaxonomyCache:         filepath.Join(WorkspaceDir, TaxonomyCacheFile),
		TaxonomyURL:           "https://arxiv.org/category_taxonomy",
		TaxonomyTimeout:       10 * time.Second,
		ArxivQuery:            "cat:math.*",
		MaxResults:            5000,
		Output:                "graph_data.json",
		LogMode:               "dev",
	}
}

// WorkspacePath returns the path to the .arxivgraph directory from a root path.
func WorkspacePath(root string) string {
	return filepath.Join(root, WorkspaceDir)
}

// ConfigPath returns the path to config.yml from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, WorkspaceDir, ConfigFile)
}

// ArticlesPath returns the path to articles.jsonl from a root path.
func ArticlesPath(root string) string {
	return filepath.Join(root, WorkspaceDir, ArticlesFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, WorkspaceDir, CacheDir)
}

// DBPath returns the path to articles.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, WorkspaceDir, CacheDir, DBFile)
}

// IsWorkspace checks if the given path contains an arxivgraph workspace.
func IsWorkspace(root string) bool {
	info, err := os.Stat(WorkspacePath(root))
	return err == nil && info.IsDir()
}

// FindWorkspace walks up from the given path to find an arxivgraph workspace.
// Returns the workspace root path or ErrNotWorkspace.
func FindWorkspace(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsWorkspace(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNotWorkspace
		}
		abs = parent
	}
}

// Load reads configuration from the workspace at the given root. Keys missing
// from config.yml, or a missing config.yml, keep their defaults.
func Load(root string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the workspace at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks that every numeric setting is usable.
func (c *Config) Validate() error {
	positive := []struct {
		key string
		val int
	}{
		{"analysis_period_days", c.AnalysisPeriodDays},
		{"top_limit_per_category", c.TopLimitPerCategory},
		{"fetch_days", c.FetchDays},
		{"min_cooccurrence_weight", c.MinCoOccurrenceWeight},
		{"max_results", c.MaxResults},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("invalid %s: %d (must be positive)", p.key, p.val)
		}
	}
	if c.TaxonomyTimeout <= 0 {
		return fmt.Errorf("invalid taxonomy_timeout: %s (must be positive)", c.TaxonomyTimeout)
	}
	if c.TaxonomyCache == "" {
		return fmt.Errorf("taxonomy_cache must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	return ValidateLogMode(c.LogMode)
}

// ValidLogModes lists the supported log_mode values.
var ValidLogModes = []string{"dev", "prod"}

// ValidateLogMode checks that the log mode value is valid.
func ValidateLogMode(mode string) error {
	for _, valid := range ValidLogModes {
		if mode == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid log_mode: %s (valid: %v)", mode, ValidLogModes)
}

// ResolvePath returns p unchanged if absolute, else joined to root.
// A leading ~ is expanded first.
func ResolvePath(root, p string) string {
	p = ExpandPath(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// field binds a config key to its getter and setter.
type field struct {
	get func(*Config) string
	set func(*Config, string) error
}

func intField(p func(*Config) *int) field {
	return field{
		get: func(c *Config) string { return strconv.Itoa(*p(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("not an integer: %s", v)
			}
			*p(c) = n
			return nil
		},
	}
}

func stringField(p func(*Config) *string) field {
	return field{
		get: func(c *Config) string { return *p(c) },
		set: func(c *Config, v string) error { *p(c) = v; return nil },
	}
}

var fields = map[string]field{
	"analysis_period_days":    intField(func(c *Config) *int { return &c.AnalysisPeriodDays }),
	"top_limit_per_category":  intField(func(c *Config) *int { return &c.TopLimitPerCategory }),
	"fetch_days":              intField(func(c *Config) *int { return &c.FetchDays }),
	"min_cooccurrence_weight": intField(func(c *Config) *int { return &c.MinCoOccurrenceWeight }),
	"max_results":             intField(func(c *Config) *int { return &c.MaxResults }),
	"taxonomy_cache":          stringField(func(c *Config) *string { return &c.TaxonomyCache }),
	"taxonomy_url":            stringField(func(c *Config) *string { return &c.TaxonomyURL }),
	"arxiv_query":             stringField(func(c *Config) *string { return &c.ArxivQuery }),
	"output":                  stringField(func(c *Config) *string { return &c.Output }),
	"log_mode":                stringField(func(c *Config) *string { return &c.LogMode }),
	"taxonomy_timeout": {
		get: func(c *Config) string { return c.TaxonomyTimeout.String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("not a duration: %s", v)
			}
			c.TaxonomyTimeout = d
			return nil
		},
	},
}

// Keys returns the supported config keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a config key as text.
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s (valid: %v)", key, Keys())
	}
	return f.get(c), nil
}

// Set parses value into a config key and validates the result.
// The config is left unchanged on error.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s (valid: %v)", key, Keys())
	}
	next := *c
	if err := f.set(&next, value); err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Values returns every key with its current value.
func (c *Config) Values() map[string]string {
	out := make(map[string]string, len(fields))
	for k, f := range fields {
		out[k] = f.get(c)
	}
	return out
}
