package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nkrishelie/arxiv-graph-viz/internal/article"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite query database.
type DB struct {
	db *sql.DB
}

// selectArticleFields contains the standard field list for SELECT queries.
const selectArticleFields = `id, title, abstract, authors_json, categories_json,
	primary_category, published_date, updated_at, url`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT,
			authors_json TEXT NOT NULL,
			categories_json TEXT NOT NULL,
			primary_category TEXT NOT NULL,
			published_date TEXT NOT NULL,
			updated_at TEXT,
			url TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_date);

		-- One row per (article, category), the unnested form of categories_json
		CREATE TABLE IF NOT EXISTS article_categories (
			article_id TEXT NOT NULL,
			category TEXT NOT NULL,
			PRIMARY KEY (article_id, category)
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	recs, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	return d.Rebuild(recs)
}

// Rebuild replaces the database contents with recs in a single transaction.
func (d *DB) Rebuild(recs []article.Record) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM articles"); err != nil {
		return 0, fmt.Errorf("clearing articles table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM article_categories"); err != nil {
		return 0, fmt.Errorf("clearing article_categories table: %w", err)
	}

	articleStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO articles (` + selectArticleFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing articles insert: %w", err)
	}
	defer articleStmt.Close()

	catStmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO article_categories (article_id, category) VALUES (?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing categories insert: %w", err)
	}
	defer catStmt.Close()

	for _, rec := range recs {
		authorsJSON, err := json.Marshal(nonNil(rec.Authors))
		if err != nil {
			return 0, fmt.Errorf("marshaling authors for %s: %w", rec.ID, err)
		}
		categoriesJSON, err := json.Marshal(nonNil(rec.Categories))
		if err != nil {
			return 0, fmt.Errorf("marshaling categories for %s: %w", rec.ID, err)
		}

		_, err = articleStmt.Exec(
			rec.ID, rec.Title, rec.Abstract, string(authorsJSON), string(categoriesJSON),
			rec.PrimaryCategory, rec.PublishedDate, formatTime(rec.UpdatedAt), rec.URL,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting article %s: %w", rec.ID, err)
		}

		for _, c := range rec.Categories {
			if _, err := catStmt.Exec(rec.ID, c); err != nil {
				return 0, fmt.Errorf("inserting category %s for %s: %w", c, rec.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(recs), nil
}

// CountSince returns the number of articles published on or after since.
func (d *DB) CountSince(since time.Time) (int, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM articles WHERE published_date >= ?`,
		since.Format(article.DateLayout)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return n, nil
}

// CoOccurrences counts, for every pair of categories, the articles published
// on or after since that carry both. Pairs are ordered (source < target), and
// pairs below minWeight are left out as noise. Results are ordered by weight
// descending, then by source and target.
func (d *DB) CoOccurrences(since time.Time, minWeight int) ([]article.CoOccurrence, error) {
	rows, err := d.db.Query(`
		WITH recent AS (
			SELECT ac.article_id, ac.category
			FROM article_categories ac
			JOIN articles a ON a.id = ac.article_id
			WHERE a.published_date >= ?
		)
		SELECT t1.category AS source, t2.category AS target, COUNT(*) AS weight
		FROM recent t1
		JOIN recent t2 ON t1.article_id = t2.article_id
		WHERE t1.category < t2.category
		GROUP BY t1.category, t2.category
		HAVING COUNT(*) >= ?
		ORDER BY weight DESC, source, target
	`, since.Format(article.DateLayout), minWeight)
	if err != nil {
		return nil, fmt.Errorf("querying co-occurrences: %w", err)
	}
	defer rows.Close()

	var out []article.CoOccurrence
	for rows.Next() {
		var co article.CoOccurrence
		if err := rows.Scan(&co.Source, &co.Target, &co.Weight); err != nil {
			return nil, fmt.Errorf("scanning co-occurrence: %w", err)
		}
		out = append(out, co)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating co-occurrences: %w", err)
	}
	return out, nil
}

// TopArticles returns, for each primary category, the limit best articles
// published on or after since. Articles with more categories rank higher;
// ties go to the more recent article, then to the smaller id. Results are
// ordered by primary category, then rank.
func (d *DB) TopArticles(since time.Time, limit int) ([]article.Record, error) {
	rows, err := d.db.Query(`
		WITH scored AS (
			SELECT a.*,
				(SELECT COUNT(*) FROM article_categories c WHERE c.article_id = a.id) * 100 AS score
			FROM articles a
			WHERE a.published_date >= ?
		),
		ranked AS (
			SELECT *,
				ROW_NUMBER() OVER (
					PARTITION BY primary_category
					ORDER BY score DESC, published_date DESC, id
				) AS rn
			FROM scored
		)
		SELECT `+selectArticleFields+`
		FROM ranked
		WHERE rn <= ?
		ORDER BY primary_category, rn
	`, since.Format(article.DateLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("querying top articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// scanArticles scans rows into article records.
func scanArticles(rows *sql.Rows) ([]article.Record, error) {
	var out []article.Record
	for rows.Next() {
		var (
			rec            article.Record
			abstract       sql.NullString
			authorsJSON    string
			categoriesJSON string
			updatedAt      sql.NullString
			url            sql.NullString
		)
		err := rows.Scan(&rec.ID, &rec.Title, &abstract, &authorsJSON, &categoriesJSON,
			&rec.PrimaryCategory, &rec.PublishedDate, &updatedAt, &url)
		if err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}

		rec.Abstract = abstract.String
		rec.URL = url.String
		if err := json.Unmarshal([]byte(authorsJSON), &rec.Authors); err != nil {
			return nil, fmt.Errorf("unmarshaling authors for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(categoriesJSON), &rec.Categories); err != nil {
			return nil, fmt.Errorf("unmarshaling categories for %s: %w", rec.ID, err)
		}
		if updatedAt.Valid && updatedAt.String != "" {
			t, err := time.Parse(time.RFC3339Nano, updatedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing updated_at for %s: %w", rec.ID, err)
			}
			rec.UpdatedAt = t
		}

		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
