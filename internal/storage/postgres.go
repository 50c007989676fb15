package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// PostgresStore is the Postgres backend, for deployments where several
// consumers read the same store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres opens a connection pool to PostgreSQL.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Init creates the PostgreSQL tables.
func (s *PostgresStore) Init(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		sender_id    BIGINT PRIMARY KEY,
		handle       TEXT,
		display_name TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS posts (
		id              BIGSERIAL PRIMARY KEY,
		source_id       BIGINT NOT NULL,
		message_id      BIGINT NOT NULL,
		posted_at       TIMESTAMPTZ,
		posted_by       BIGINT,
		raw_text        TEXT NOT NULL,
		lang            TEXT,
		type_tag        TEXT,
		contact_handles TEXT[] NOT NULL DEFAULT '{}',
		contact_phones  TEXT[] NOT NULL DEFAULT '{}',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE(source_id, message_id)
	);
	CREATE INDEX IF NOT EXISTS idx_posts_type_tag ON posts(type_tag);
	CREATE INDEX IF NOT EXISTS idx_posts_posted_at ON posts(posted_at);

	CREATE TABLE IF NOT EXISTS post_trips (
		id                BIGSERIAL PRIMARY KEY,
		post_id           BIGINT NOT NULL UNIQUE REFERENCES posts(id) ON DELETE CASCADE,
		origin_city       TEXT,
		origin_area       TEXT,
		origin_code       TEXT,
		destination_city  TEXT,
		destination_area  TEXT,
		destination_code  TEXT,
		airline           TEXT,
		flight_date_text  TEXT,
		flight_time_text  TEXT,
		flight_date       DATE
	);
	CREATE INDEX IF NOT EXISTS idx_post_trips_route ON post_trips(origin_code, destination_code);
	CREATE INDEX IF NOT EXISTS idx_post_trips_date ON post_trips(flight_date);

	CREATE TABLE IF NOT EXISTS cursors (
		source_id       BIGINT PRIMARY KEY,
		last_message_id BIGINT NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// PostExists reports whether (sourceID, messageID) was already committed.
func (s *PostgresStore) PostExists(ctx context.Context, sourceID, messageID int64) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx,
		`SELECT 1 FROM posts WHERE source_id = $1 AND message_id = $2`,
		sourceID, messageID).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check post: %w", err)
	}
	return true, nil
}

// Cursor returns the last processed message ID for the source.
func (s *PostgresStore) Cursor(ctx context.Context, sourceID int64) (int64, error) {
	var last int64
	err := s.pool.QueryRow(ctx,
		`SELECT last_message_id FROM cursors WHERE source_id = $1`, sourceID).Scan(&last)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load cursor: %w", err)
	}
	return last, nil
}

// CommitBatch writes the batch and its cursor in one transaction.
func (s *PostgresStore) CommitBatch(ctx context.Context, b Batch) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, u := range b.Users {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (sender_id, handle, display_name)
			VALUES ($1, $2, $3)
			ON CONFLICT (sender_id) DO NOTHING`,
			u.SenderID, u.Handle, u.DisplayName); err != nil {
			return fmt.Errorf("insert user %d: %w", u.SenderID, err)
		}
	}

	for _, p := range b.Posts {
		var postedBy any
		if p.SenderID != 0 {
			postedBy = p.SenderID
		}
		var postedAt any
		if !p.PostedAt.IsZero() {
			postedAt = p.PostedAt.UTC()
		}

		r := p.Record
		var postID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO posts (source_id, message_id, posted_at, posted_by, raw_text, lang, type_tag, contact_handles, contact_phones)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			p.SourceID, p.MessageID, postedAt, postedBy,
			r.RawText, r.Language, nullable(r.TypeTag),
			emptySlice(r.ContactHandles), emptySlice(r.ContactPhones)).Scan(&postID)
		if err != nil {
			return fmt.Errorf("insert post %d: %w", p.MessageID, err)
		}

		var flightDate any
		if r.Date != nil {
			flightDate = *r.Date
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO post_trips (post_id, origin_city, origin_area, origin_code,
				destination_city, destination_area, destination_code,
				airline, flight_date_text, flight_time_text, flight_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			postID, r.OriginCity, r.OriginArea, r.OriginCode,
			r.DestinationCity, r.DestinationArea, r.DestinationCode,
			r.Airline, r.DateText, r.TimeText, flightDate); err != nil {
			return fmt.Errorf("insert trip for post %d: %w", p.MessageID, err)
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO cursors (source_id, last_message_id, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (source_id) DO UPDATE SET
			last_message_id = EXCLUDED.last_message_id,
			updated_at = EXCLUDED.updated_at`,
		b.SourceID, b.Cursor); err != nil {
		return fmt.Errorf("persist cursor: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}
