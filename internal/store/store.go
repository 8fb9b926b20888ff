// Package store holds the current loaded article set. Each completed
// fetch replaces the contents wholesale; nothing survives the process,
// matching the no-persistence design.
package store

import (
	"database/sql"
	"fmt"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	_ "modernc.org/sqlite"
)

// Store is an in-memory SQLite-backed article store. It keeps the
// insertion order of the last replaced set.
type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory store.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	// A second connection to :memory: would see a different database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			position     INTEGER PRIMARY KEY,
			id           INTEGER NOT NULL,
			title        TEXT NOT NULL,
			summary      TEXT NOT NULL,
			category     TEXT NOT NULL,
			sentiment    TEXT NOT NULL,
			score        REAL NOT NULL,
			source       TEXT NOT NULL,
			url          TEXT NOT NULL DEFAULT '',
			published_at TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the whole store contents for the given set.
func (s *Store) Replace(articles []news.Article) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM articles"); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO articles (position, id, title, summary, category, sentiment, score, source, url, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range articles {
		_, err := stmt.Exec(i, a.ID, a.Title, a.Summary, a.Category, a.Sentiment, a.Score, a.Source, a.URL, a.PublishedAt)
		if err != nil {
			return fmt.Errorf("inserting article %d: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// All returns the stored set in insertion order.
func (s *Store) All() ([]news.Article, error) {
	return s.query("SELECT id, title, summary, category, sentiment, score, source, url, published_at FROM articles ORDER BY position")
}

// Search returns articles whose title or summary contains the term,
// in insertion order. SQLite LIKE is case-insensitive for ASCII, the
// same semantics as the in-memory filter engine.
func (s *Store) Search(term string) ([]news.Article, error) {
	if term == "" {
		return s.All()
	}
	pattern := "%" + term + "%"
	return s.query(
		"SELECT id, title, summary, category, sentiment, score, source, url, published_at FROM articles WHERE title LIKE ? OR summary LIKE ? ORDER BY position",
		pattern, pattern,
	)
}

// Len returns the number of stored articles.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&n)
	return n, err
}

func (s *Store) query(q string, args ...interface{}) ([]news.Article, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		var a news.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.Category, &a.Sentiment, &a.Score, &a.Source, &a.URL, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
