package v1

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// HistoryEntry is one finalized title.
type HistoryEntry struct {
	CreatedAt string
	Mode      string
	Title     string
}

// HistoryStore records finalized titles in a local SQLite database so
// earlier results survive the session. All failures here are
// non-fatal to the interactive flow; callers log and continue.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistory opens the history database at path, creating the schema
// if needed.
func OpenHistory(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db %s: %w", path, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS titles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		mode TEXT NOT NULL,
		title TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create titles table: %w", err)
	}
	Log(LogTypeHistory, "History database ready", path)
	return &HistoryStore{db: db}, nil
}

// Record stores a finalized title. Mode distinguishes the row and
// column tools.
func (h *HistoryStore) Record(mode, title string) error {
	_, err := h.db.Exec(
		"INSERT INTO titles (created_at, mode, title) VALUES (?, ?, ?)",
		time.Now().Format(time.RFC3339), mode, title,
	)
	if err != nil {
		return fmt.Errorf("record title: %w", err)
	}
	Log(LogTypeHistory, "Recorded title", title)
	return nil
}

// Recent returns up to limit entries, newest first.
func (h *HistoryStore) Recent(limit int) ([]HistoryEntry, error) {
	rows, err := h.db.Query(
		"SELECT created_at, mode, title FROM titles ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.CreatedAt, &e.Mode, &e.Title); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (h *HistoryStore) Close() error {
	return h.db.Close()
}
