package arxiv

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
)

// toRecord converts a feed entry to an article record. It reports false when
// none of the entry's categories is known.
func toRecord(item *gofeed.Item, published time.Time, known CategorySet) (article.Record, bool) {
	var cats []string
	for _, c := range item.Categories {
		if known != nil && !known.Has(c) {
			continue
		}
		cats = append(cats, c)
	}
	if len(cats) == 0 {
		return article.Record{}, false
	}

	var authors []string
	for _, a := range item.Authors {
		if a == nil || a.Name == "" {
			continue
		}
		authors = append(authors, a.Name)
	}

	return article.Record{
		ID:              shortID(item.GUID),
		URL:             item.GUID,
		Title:           collapseNewlines(item.Title),
		Abstract:        collapseNewlines(item.Description),
		Authors:         authors,
		Categories:      cats,
		PrimaryCategory: primaryCategory(item.Extensions),
		PublishedDate:   published.UTC().Format(article.DateLayout),
	}, true
}

// shortID returns the last path segment of an entry id such as
// http://arxiv.org/abs/2401.01234v1.
func shortID(entryID string) string {
	entryID = strings.TrimRight(entryID, "/")
	if i := strings.LastIndex(entryID, "/"); i >= 0 {
		return entryID[i+1:]
	}
	return entryID
}

func collapseNewlines(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// primaryCategory reads <arxiv:primary_category term="..."/>.
func primaryCategory(exts ext.Extensions) string {
	for _, e := range exts["arxiv"]["primary_category"] {
		if term := e.Attrs["term"]; term != "" {
			return term
		}
	}
	return ""
}

func itemPublished(item *gofeed.Item) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return *item.PublishedParsed
	case item.UpdatedParsed != nil:
		return *item.UpdatedParsed
	default:
		return time.Time{}
	}
}
