// Package storage persists extracted posts, their trips and the per-source
// ingestion cursors. SQLite is the primary backend; Postgres is available
// for shared deployments and ClickHouse as an append-only archive sink.
package storage

import (
	"context"
	"time"

	"travmatch/internal/trips"
)

// User is the sender identity as first seen. Identity fields are
// first-write-wins: a later sighting never overwrites them.
type User struct {
	SenderID    int64
	Handle      string
	DisplayName string
}

// Post is one stored message together with its extracted trip.
// (SourceID, MessageID) is unique; a post owns at most one trip.
type Post struct {
	SourceID  int64
	MessageID int64
	PostedAt  time.Time
	SenderID  int64 // 0 when the sender is unknown
	Record    trips.Record
}

// Batch is one commit unit: the users and posts accumulated since the last
// boundary plus the cursor value to persist with them. Users and posts may
// be empty; the cursor is still written (runs that add nothing must persist
// their high-water mark).
type Batch struct {
	SourceID int64
	Users    []User
	Posts    []Post
	Cursor   int64
}

// Store is implemented by each database backend.
type Store interface {
	// Init creates the schema.
	Init(ctx context.Context) error

	// PostExists reports whether a post for (sourceID, messageID) was
	// already committed.
	PostExists(ctx context.Context, sourceID, messageID int64) (bool, error)

	// Cursor returns the last processed message ID for the source, zero
	// when the source has never been scanned.
	Cursor(ctx context.Context, sourceID int64) (int64, error)

	// CommitBatch writes a batch and its cursor in a single transaction.
	// Either everything in the batch is committed or nothing is.
	CommitBatch(ctx context.Context, b Batch) error

	Close() error
}

// Config holds connection settings for all backends.
type Config struct {
	Backend    string         `yaml:"backend"` // "sqlite" or "postgres"
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// DefaultConfig returns local development settings.
func DefaultConfig() Config {
	return Config{
		Backend:    "sqlite",
		SQLitePath: "travmatch.db",
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			Database: "travmatch",
			User:     "travmatch",
			Password: "travmatch",
		},
	}
}

// Open opens the configured backend and initializes its schema.
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		st  Store
		err error
	)
	switch cfg.Backend {
	case "postgres":
		st, err = OpenPostgres(ctx, cfg.Postgres)
	default:
		st, err = OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}
