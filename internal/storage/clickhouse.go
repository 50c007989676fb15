package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// ClickHouseConfig holds ClickHouse connection settings.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ArchiveSink appends every ingested post to ClickHouse for analytics.
// It is optional and write-only: the ingestion dedup/cursor logic never
// depends on it.
type ArchiveSink struct {
	conn driver.Conn
}

// OpenArchive opens a connection to ClickHouse and creates the schema.
func OpenArchive(ctx context.Context, cfg ClickHouseConfig) (*ArchiveSink, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:     10 * time.Second,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("open clickhouse: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	sink := &ArchiveSink{conn: conn}
	if err := sink.createSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return sink, nil
}

// Close closes the ClickHouse connection.
func (s *ArchiveSink) Close() error {
	return s.conn.Close()
}

func (s *ArchiveSink) createSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS trip_posts (
		source_id        Int64,
		message_id       Int64,
		posted_at        DateTime64(3),
		lang             LowCardinality(String),
		type_tag         LowCardinality(String),
		origin_code      LowCardinality(String),
		destination_code LowCardinality(String),
		airline          LowCardinality(String),
		flight_date      Nullable(Date32),
		flight_time      String,
		raw_text         String,
		ingested_at      DateTime64(3) DEFAULT now64(3)
	)
	ENGINE = MergeTree()
	PARTITION BY toYYYYMM(posted_at)
	ORDER BY (origin_code, destination_code, posted_at, message_id)
	SETTINGS index_granularity = 8192`

	if err := s.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("create archive schema: %w", err)
	}
	return nil
}

// Append writes a batch of posts to the archive table.
func (s *ArchiveSink) Append(ctx context.Context, posts []Post) error {
	if len(posts) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO trip_posts (source_id, message_id, posted_at, lang, type_tag,
			origin_code, destination_code, airline, flight_date, flight_time, raw_text)`)
	if err != nil {
		return fmt.Errorf("prepare archive batch: %w", err)
	}

	for _, p := range posts {
		r := p.Record
		var flightDate *time.Time
		if r.Date != nil {
			d := *r.Date
			flightDate = &d
		}
		err = batch.Append(p.SourceID, p.MessageID, p.PostedAt.UTC(), r.Language,
			r.TypeTag, r.OriginCode, r.DestinationCode, r.Airline,
			flightDate, r.TimeText, r.RawText)
		if err != nil {
			return fmt.Errorf("append post %d: %w", p.MessageID, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send archive batch: %w", err)
	}
	return nil
}

// RouteCounts returns post counts per (origin, destination) pair, a sanity
// query for dashboards.
func (s *ArchiveSink) RouteCounts(ctx context.Context) (map[string]uint64, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT origin_code, destination_code, count() AS c
		FROM trip_posts
		WHERE origin_code != '' AND destination_code != ''
		GROUP BY origin_code, destination_code
		ORDER BY c DESC`)
	if err != nil {
		return nil, fmt.Errorf("query route counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]uint64)
	for rows.Next() {
		var origin, dest string
		var c uint64
		if err := rows.Scan(&origin, &dest, &c); err != nil {
			return nil, fmt.Errorf("scan route count: %w", err)
		}
		out[strings.ToUpper(origin)+"-"+strings.ToUpper(dest)] = c
	}
	return out, rows.Err()
}
