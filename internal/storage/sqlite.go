package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the primary store, a single-file SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite database at the given path.
// An empty path or ":memory:" opens an in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer; SQLite serializes anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Init creates the tables and indices.
func (s *SQLiteStore) Init(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		sender_id    INTEGER PRIMARY KEY,
		handle       TEXT,
		display_name TEXT,
		created_at   TEXT DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS posts (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		source_id       INTEGER NOT NULL,
		message_id      INTEGER NOT NULL,
		posted_at       TEXT,
		posted_by       INTEGER,
		raw_text        TEXT NOT NULL,
		lang            TEXT,
		type_tag        TEXT,
		contact_handles TEXT,
		contact_phones  TEXT,
		created_at      TEXT DEFAULT (datetime('now')),
		UNIQUE(source_id, message_id)
	);
	CREATE INDEX IF NOT EXISTS idx_posts_type_tag ON posts(type_tag);
	CREATE INDEX IF NOT EXISTS idx_posts_posted_at ON posts(posted_at);

	CREATE TABLE IF NOT EXISTS post_trips (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		post_id           INTEGER NOT NULL UNIQUE REFERENCES posts(id) ON DELETE CASCADE,
		origin_city       TEXT,
		origin_area       TEXT,
		origin_code       TEXT,
		destination_city  TEXT,
		destination_area  TEXT,
		destination_code  TEXT,
		airline           TEXT,
		flight_date_text  TEXT,
		flight_time_text  TEXT,
		flight_date       TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_post_trips_route ON post_trips(origin_code, destination_code);
	CREATE INDEX IF NOT EXISTS idx_post_trips_date ON post_trips(flight_date);

	CREATE TABLE IF NOT EXISTS cursors (
		source_id       INTEGER PRIMARY KEY,
		last_message_id INTEGER NOT NULL,
		updated_at      TEXT DEFAULT (datetime('now'))
	);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// PostExists reports whether (sourceID, messageID) was already committed.
func (s *SQLiteStore) PostExists(ctx context.Context, sourceID, messageID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM posts WHERE source_id = ? AND message_id = ?`,
		sourceID, messageID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check post: %w", err)
	}
	return true, nil
}

// Cursor returns the last processed message ID for the source.
func (s *SQLiteStore) Cursor(ctx context.Context, sourceID int64) (int64, error) {
	var last int64
	err := s.db.QueryRowContext(ctx,
		`SELECT last_message_id FROM cursors WHERE source_id = ?`, sourceID).Scan(&last)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load cursor: %w", err)
	}
	return last, nil
}

// CommitBatch writes the batch and its cursor in one transaction.
func (s *SQLiteStore) CommitBatch(ctx context.Context, b Batch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range b.Users {
		// First write wins for identity fields.
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (sender_id, handle, display_name) VALUES (?, ?, ?)`,
			u.SenderID, u.Handle, u.DisplayName); err != nil {
			return fmt.Errorf("insert user %d: %w", u.SenderID, err)
		}
	}

	for _, p := range b.Posts {
		handles, phones, err := contactJSON(p)
		if err != nil {
			return err
		}

		var postedBy any
		if p.SenderID != 0 {
			postedBy = p.SenderID
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO posts (source_id, message_id, posted_at, posted_by, raw_text, lang, type_tag, contact_handles, contact_phones)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.SourceID, p.MessageID, timeOrNil(p.PostedAt), postedBy,
			p.Record.RawText, p.Record.Language, nullable(p.Record.TypeTag),
			handles, phones)
		if err != nil {
			return fmt.Errorf("insert post %d: %w", p.MessageID, err)
		}
		postID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("post id: %w", err)
		}

		r := p.Record
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO post_trips (post_id, origin_city, origin_area, origin_code,
				destination_city, destination_area, destination_code,
				airline, flight_date_text, flight_time_text, flight_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			postID, r.OriginCity, r.OriginArea, r.OriginCode,
			r.DestinationCity, r.DestinationArea, r.DestinationCode,
			r.Airline, r.DateText, r.TimeText, nullable(r.DateISO())); err != nil {
			return fmt.Errorf("insert trip for post %d: %w", p.MessageID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO cursors (source_id, last_message_id, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(source_id) DO UPDATE SET
			last_message_id = excluded.last_message_id,
			updated_at = excluded.updated_at`,
		b.SourceID, b.Cursor); err != nil {
		return fmt.Errorf("persist cursor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func contactJSON(p Post) (string, string, error) {
	handles, err := json.Marshal(emptySlice(p.Record.ContactHandles))
	if err != nil {
		return "", "", fmt.Errorf("marshal handles: %w", err)
	}
	phones, err := json.Marshal(emptySlice(p.Record.ContactPhones))
	if err != nil {
		return "", "", fmt.Errorf("marshal phones: %w", err)
	}
	return string(handles), string(phones), nil
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
