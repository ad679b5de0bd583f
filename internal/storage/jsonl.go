// Package storage persists articles as JSONL and answers analytics queries
// over them from an ephemeral SQLite database.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads all articles from a JSONL file.
// A missing file yields no articles and no error.
func ReadAll(path string) ([]article.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening articles file: %w", err)
	}
	defer f.Close()

	var recs []article.Record
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec article.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		recs = append(recs, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading articles file: %w", err)
	}

	return recs, nil
}

// WriteAll replaces the JSONL file with recs. The content goes to a temp file
// in the same directory first, so a failed write leaves the old file intact.
func WriteAll(path string, recs []article.Record) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".articles-*.jsonl")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmpFile)
	for i, rec := range recs {
		data, err := json.Marshal(rec)
		if err != nil {
			tmpFile.Close()
			return fmt.Errorf("encoding article %d: %w", i, err)
		}
		if _, err := w.Write(data); err != nil {
			tmpFile.Close()
			return fmt.Errorf("writing article %d: %w", i, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmpFile.Close()
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("flushing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	success = true
	return nil
}

// MergeResult reports what Merge did.
type MergeResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// Merge folds incoming articles into existing ones. A matching id updates the
// title, categories and update time of the stored article and keeps everything
// else; a new id is appended. Existing order is preserved.
func Merge(existing, incoming []article.Record, now time.Time) ([]article.Record, MergeResult) {
	merged := make([]article.Record, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, rec := range merged {
		index[rec.ID] = i
	}

	var res MergeResult
	for _, rec := range incoming {
		rec.UpdatedAt = now
		if i, ok := index[rec.ID]; ok {
			merged[i].Title = rec.Title
			merged[i].Categories = rec.Categories
			merged[i].UpdatedAt = rec.UpdatedAt
			res.Updated++
			continue
		}
		index[rec.ID] = len(merged)
		merged = append(merged, rec)
		res.Added++
	}

	return merged, res
}
