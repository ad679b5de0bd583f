package graph

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
)

func TestWriteFile_Shape(t *testing.T) {
	articles := []article.Record{{
		ID:              "2401.00001",
		Title:           "Curves & <surfaces>",
		Abstract:        "We study curves.",
		Authors:         []string{"Émilie Noether"},
		Categories:      []string{"math.AG"},
		PrimaryCategory: "math.AG",
		URL:             "http://arxiv.org/abs/2401.00001",
	}}
	doc, err := Build(testTaxonomy(), articles, []article.CoOccurrence{{Source: "cs.AI", Target: "math.AG", Weight: 2}})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out", "graph_data.json")
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "Curves & <surfaces>") || !strings.Contains(text, "Émilie Noether") {
		t.Errorf("output escapes text that should be written verbatim:\n%s", text)
	}

	var parsed struct {
		Nodes []map[string]any `json:"nodes"`
		Links []map[string]any `json:"links"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Nodes) != 3 || len(parsed.Links) != 2 {
		t.Fatalf("got %d nodes and %d links, want 3 and 2", len(parsed.Nodes), len(parsed.Links))
	}

	art := parsed.Nodes[2]
	for _, key := range []string{"id", "label", "type", "cluster", "val", "authors", "primary_category", "url", "description"} {
		if _, ok := art[key]; !ok {
			t.Errorf("article node missing %q: %v", key, art)
		}
	}
	if _, ok := art["group"]; ok {
		t.Errorf("article node has a group: %v", art)
	}

	cat := parsed.Nodes[0]
	for _, key := range []string{"id", "label", "type", "group", "description", "cluster", "val"} {
		if _, ok := cat[key]; !ok {
			t.Errorf("category node missing %q: %v", key, cat)
		}
	}

	contains := parsed.Links[0]
	if _, ok := contains["label"]; ok {
		t.Errorf("CONTAINS edge has a label: %v", contains)
	}
	related := parsed.Links[1]
	if related["type"] != "RELATED" || related["label"] != "2 shared articles" || related["val"] != 10.0 {
		t.Errorf("RELATED edge = %v", related)
	}

	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".graph-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, &Document{}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"nodes\": [],\n  \"links\": []\n}\n"
	if buf.String() != want {
		t.Errorf("Encode(empty) = %q, want %q", buf.String(), want)
	}
}

func TestWriteFile_BadDirectoryLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteFile(filepath.Join(blocker, "graph.json"), &Document{})
	if err == nil {
		t.Fatal("WriteFile() into a file path succeeded, want error")
	}
	if data, _ := os.ReadFile(blocker); string(data) != "x" {
		t.Error("existing file was modified")
	}
}
