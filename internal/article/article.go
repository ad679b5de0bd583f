// Package article defines the domain types for arXiv article metadata and the
// category co-occurrence weights computed over them.
package article

import "time"

// DateLayout is the layout used for published dates in JSONL and SQLite.
const DateLayout = "2006-01-02"

// Record represents a single arXiv article.
type Record struct {
	// Identity
	ID  string `json:"id"`  // arXiv identifier without the abs/ prefix, e.g. 2401.01234v1
	URL string `json:"url"` // Abstract page URL

	// Metadata
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Authors  []string `json:"authors"` // Display names, in paper order

	// Classification
	Categories      []string `json:"categories"`       // All attached subject codes
	PrimaryCategory string   `json:"primary_category"` // Main subject code, may be outside the taxonomy

	// Dates
	PublishedDate string    `json:"published_date"` // YYYY-MM-DD
	UpdatedAt     time.Time `json:"updated_at"`
}

// SecondaryCategories returns the attached categories other than the primary one,
// in their original order and without duplicates.
func (r Record) SecondaryCategories() []string {
	seen := map[string]bool{r.PrimaryCategory: true}
	var out []string
	for _, c := range r.Categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// CoOccurrence is the number of articles that share two categories.
// Source is always lexicographically smaller than Target.
type CoOccurrence struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}
