package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPathFunctions(t *testing.T) {
	root := "/test/ws"

	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{"WorkspacePath", WorkspacePath, "/test/ws/.arxivgraph"},
		{"ConfigPath", ConfigPath, "/test/ws/.arxivgraph/config.yml"},
		{"ArticlesPath", ArticlesPath, "/test/ws/.arxivgraph/articles.jsonl"},
		{"CachePath", CachePath, "/test/ws/.arxivgraph/cache"},
		{"DBPath", DBPath, "/test/ws/.arxivgraph/cache/articles.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(root)
			if got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.name, root, got, tt.want)
			}
		})
	}
}

func TestIsWorkspace(t *testing.T) {
	tmpDir := t.TempDir()

	if IsWorkspace(tmpDir) {
		t.Error("IsWorkspace() = true for plain directory")
	}

	if err := os.Mkdir(WorkspacePath(tmpDir), 0755); err != nil {
		t.Fatalf("Failed to create .arxivgraph: %v", err)
	}

	if !IsWorkspace(tmpDir) {
		t.Error("IsWorkspace() = false for workspace directory")
	}
}

func TestIsWorkspace_FileNotDir(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.WriteFile(WorkspacePath(tmpDir), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}
	if IsWorkspace(tmpDir) {
		t.Error("IsWorkspace() = true when .arxivgraph is a file")
	}
}

func TestFindWorkspace(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(WorkspacePath(tmpDir), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindWorkspace(nested)
	if err != nil {
		t.Fatalf("FindWorkspace() error = %v", err)
	}
	want, _ := filepath.Abs(tmpDir)
	if got != want {
		t.Errorf("FindWorkspace() = %q, want %q", got, want)
	}
}

func TestFindWorkspace_NotFound(t *testing.T) {
	_, err := FindWorkspace(t.TempDir())
	if !errors.Is(err, ErrNotWorkspace) {
		t.Errorf("FindWorkspace() error = %v, want ErrNotWorkspace", err)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(WorkspacePath(root), 0755); err != nil {
		t.Fatal(err)
	}
	content := "top_limit_per_category: 3\ntaxonomy_timeout: 2s\n"
	if err := os.WriteFile(ConfigPath(root), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TopLimitPerCategory != 3 {
		t.Errorf("TopLimitPerCategory = %d, want 3", cfg.TopLimitPerCategory)
	}
	if cfg.TaxonomyTimeout != 2*time.Second {
		t.Errorf("TaxonomyTimeout = %v, want 2s", cfg.TaxonomyTimeout)
	}
	if cfg.AnalysisPeriodDays != 365 || cfg.ArxivQuery != "cat:math.*" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(WorkspacePath(root), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(root), []byte("fetch_days: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Error("Load() succeeded on invalid YAML")
	}
}

func TestSaveLoad(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(WorkspacePath(root), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.FetchDays = 9
	cfg.TaxonomyTimeout = 1500 * time.Millisecond
	cfg.LogMode = "prod"
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "taxonomy_timeout: 1.5s") {
		t.Errorf("duration not saved as text:\n%s", data)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero period", func(c *Config) { c.AnalysisPeriodDays = 0 }, "analysis_period_days"},
		{"negative limit", func(c *Config) { c.TopLimitPerCategory = -1 }, "top_limit_per_category"},
		{"zero min weight", func(c *Config) { c.MinCoOccurrenceWeight = 0 }, "min_cooccurrence_weight"},
		{"zero timeout", func(c *Config) { c.TaxonomyTimeout = 0 }, "taxonomy_timeout"},
		{"empty output", func(c *Config) { c.Output = "" }, "output"},
		{"bad log mode", func(c *Config) { c.LogMode = "loud" }, "log_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("fetch_days", "7"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _ := cfg.Get("fetch_days"); v != "7" {
		t.Errorf("Get(fetch_days) = %q, want 7", v)
	}

	if err := cfg.Set("taxonomy_timeout", "30s"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.TaxonomyTimeout != 30*time.Second {
		t.Errorf("TaxonomyTimeout = %v", cfg.TaxonomyTimeout)
	}

	for _, tc := range []struct{ key, value string }{
		{"fetch_days", "many"},
		{"fetch_days", "0"},
		{"taxonomy_timeout", "soon"},
		{"log_mode", "loud"},
		{"no_such_key", "1"},
	} {
		if err := cfg.Set(tc.key, tc.value); err == nil {
			t.Errorf("Set(%q, %q) succeeded, want error", tc.key, tc.value)
		}
	}
	if cfg.FetchDays != 7 || cfg.LogMode != "dev" {
		t.Errorf("failed Set changed config: %+v", cfg)
	}

	if _, err := cfg.Get("no_such_key"); err == nil {
		t.Error("Get(no_such_key) succeeded")
	}
}

func TestValuesCoversKeys(t *testing.T) {
	vals := Default().Values()
	for _, k := range Keys() {
		if _, ok := vals[k]; !ok {
			t.Errorf("Values() missing %q", k)
		}
	}
	if vals["output"] != "graph_data.json" {
		t.Errorf("output = %q", vals["output"])
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/ws", "graph.json"); got != "/ws/graph.json" {
		t.Errorf("ResolvePath(relative) = %q", got)
	}
	if got := ResolvePath("/ws", "/tmp/graph.json"); got != "/tmp/graph.json" {
		t.Errorf("ResolvePath(absolute) = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~", home},
		{"~/graphs", filepath.Join(home, "graphs")},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
