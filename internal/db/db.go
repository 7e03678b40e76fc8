// Package db provides the SQLite store for per-request usage accounting.
// The token vocabulary itself is never persisted — only request statistics
// (endpoint, strategy, counts) are written here.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps *sql.DB and provides migration support.
type DB struct {
	*sql.DB
}

// New opens a SQLite connection with WAL mode and foreign keys enabled.
// Driver name is "sqlite" (modernc.org/sqlite, not mattn/go-sqlite3).
func New(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_journal=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("db.New: open: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db.New: ping: %w", err)
	}
	// Limit to 1 writer at a time to avoid SQLITE_BUSY in WAL mode.
	sqlDB.SetMaxOpenConns(1)
	return &DB{sqlDB}, nil
}

// Migrate runs all CREATE TABLE IF NOT EXISTS migrations exactly once per
// schema version.
func (d *DB) Migrate() error {
	// Ensure the settings table exists first (holds schema_version).
	if _, err := d.Exec(ddlSettings); err != nil {
		return fmt.Errorf("db.Migrate: settings table: %w", err)
	}

	var version int
	row := d.QueryRow(`SELECT value FROM settings WHERE key='schema_version' LIMIT 1`)
	_ = row.Scan(&version) // Ignore scan error — row may not exist yet (version=0).

	if version >= schemaVersion {
		return nil
	}

	if _, err := d.Exec(ddlRequests); err != nil {
		return fmt.Errorf("db.Migrate: %w", err)
	}

	_, err := d.Exec(`INSERT INTO settings (key, value) VALUES ('schema_version', ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value`, schemaVersion)
	if err != nil {
		return fmt.Errorf("db.Migrate: schema_version upsert: %w", err)
	}
	return nil
}

const schemaVersion = 1

// ── Model Types ──────────────────────────────────────────────────────────────

// RequestRecord is one accounted API call.
type RequestRecord struct {
	ID         int       `json:"id"`
	RequestID  string    `json:"request_id"`
	Endpoint   string    `json:"endpoint"`
	Strategy   string    `json:"strategy"`
	TokenCount int       `json:"token_count"`
	CharCount  int       `json:"char_count"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// UsageRow is one aggregated line of the usage report.
type UsageRow struct {
	Date       string `json:"date"`
	Endpoint   string `json:"endpoint"`
	Requests   int    `json:"requests"`
	TokenCount int    `json:"token_count"`
	CharCount  int    `json:"char_count"`
}

// ── DDL Statements ───────────────────────────────────────────────────────────

const ddlSettings = `CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT ''
);`

const ddlRequests = `CREATE TABLE IF NOT EXISTS requests (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id  TEXT    NOT NULL DEFAULT '',
	endpoint    TEXT    NOT NULL,
	strategy    TEXT    NOT NULL DEFAULT '',
	token_count INTEGER NOT NULL DEFAULT 0,
	char_count  INTEGER NOT NULL DEFAULT 0,
	date        TEXT    NOT NULL,
	created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// ── Operations ───────────────────────────────────────────────────────────────

// RecordRequest inserts one usage row.
func (d *DB) RecordRequest(ctx context.Context, rec RequestRecord) error {
	_, err := d.ExecContext(ctx,
		`INSERT INTO requests (request_id, endpoint, strategy, token_count, char_count, date)
		 VALUES (?,?,?,?,?,?)`,
		rec.RequestID, rec.Endpoint, rec.Strategy, rec.TokenCount, rec.CharCount, rec.Date)
	if err != nil {
		return fmt.Errorf("db.RecordRequest: %w", err)
	}
	return nil
}

// Usage aggregates accounted requests per date and endpoint since the given
// date (inclusive, format 2006-01-02), newest first.
func (d *DB) Usage(ctx context.Context, since string) ([]UsageRow, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT date, endpoint, COUNT(*), SUM(token_count), SUM(char_count)
		 FROM requests WHERE date >= ?
		 GROUP BY date, endpoint ORDER BY date DESC, endpoint ASC`, since)
	if err != nil {
		return nil, fmt.Errorf("db.Usage: %w", err)
	}
	defer rows.Close()

	var results []UsageRow
	for rows.Next() {
		var u UsageRow
		if err := rows.Scan(&u.Date, &u.Endpoint, &u.Requests, &u.TokenCount, &u.CharCount); err != nil {
			continue
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

// Prune deletes usage rows older than the given date (exclusive) and
// returns the number of rows removed.
func (d *DB) Prune(ctx context.Context, before string) (int64, error) {
	res, err := d.ExecContext(ctx, `DELETE FROM requests WHERE date < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("db.Prune: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
