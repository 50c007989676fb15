// Package ingest drives the incremental per-source scan: fetch new messages,
// extract, dedup, persist in batches and advance the resume cursor.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"travmatch/internal/feed"
	"travmatch/internal/storage"
	"travmatch/internal/trips"
)

// DefaultBatchSize is how many new posts are committed per transaction.
const DefaultBatchSize = 50

// Stats reports what one run did. Every fetched message is accounted for in
// exactly one of the skip/add/fail counters.
type Stats struct {
	Processed        int   // messages fetched and considered
	Added            int   // new posts committed
	SkippedDuplicate int   // already stored, not re-extracted
	SkippedEmpty     int   // empty body
	SkippedFiltered  int   // did not contain the configured search needle
	Failed           int   // store rejected the write; logged and skipped
	HighWater        int64 // final cursor value
}

// Coordinator runs one incremental scan for one source. It must not be
// invoked concurrently for the same source; callers hold a run-level lock.
type Coordinator struct {
	Source   feed.Source
	SourceID int64
	Store    storage.Store

	// Archive is an optional write-only sink; failures there are logged,
	// never fatal.
	Archive *storage.ArchiveSink

	// Search, when set, drops messages not containing the needle. Dropped
	// messages still advance the high-water mark.
	Search string

	BatchSize int
	Log       zerolog.Logger
}

// Run performs one scan. The returned stats are valid even when err is
// non-nil; on error the cursor stays at the last successful commit, so a
// retry reprocesses at most the uncommitted tail (dedup makes that safe).
func (c *Coordinator) Run(ctx context.Context) (Stats, error) {
	batchSize := c.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var stats Stats

	cursor, err := c.Store.Cursor(ctx, c.SourceID)
	if err != nil {
		return stats, fmt.Errorf("load cursor: %w", err)
	}
	highWater := cursor
	stats.HighWater = highWater

	msgs, err := c.Source.Fetch(ctx, cursor)
	if err != nil {
		return stats, fmt.Errorf("fetch messages: %w", err)
	}
	c.Log.Debug().Int64("source", c.SourceID).Int64("cursor", cursor).
		Int("fetched", len(msgs)).Msg("scan started")

	var (
		pendingUsers []storage.User
		pendingPosts []storage.Post
		seenSenders  = map[int64]struct{}{}
	)

	flush := func() error {
		candidate := highWater
		for _, p := range pendingPosts {
			if p.MessageID > candidate {
				candidate = p.MessageID
			}
		}

		b := storage.Batch{
			SourceID: c.SourceID,
			Users:    pendingUsers,
			Posts:    pendingPosts,
			Cursor:   candidate,
		}
		if err := c.Store.CommitBatch(ctx, b); err != nil {
			c.Log.Warn().Err(err).Int("posts", len(pendingPosts)).
				Msg("batch commit failed, retrying posts individually")
			candidate = c.commitIndividually(ctx, pendingUsers, pendingPosts, highWater, &stats)
		} else {
			stats.Added += len(pendingPosts)
			c.archive(ctx, pendingPosts)
		}

		highWater = candidate
		stats.HighWater = highWater
		pendingUsers = pendingUsers[:0]
		pendingPosts = pendingPosts[:0]
		return nil
	}

	for _, m := range msgs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Processed++

		// Empty bodies never advance the cursor; a trailing run of them is
		// refetched and recounted on the next scan.
		body := strings.TrimSpace(m.Text)
		if body == "" {
			stats.SkippedEmpty++
			continue
		}
		if c.Search != "" && !strings.Contains(body, c.Search) {
			stats.SkippedFiltered++
			if int64(m.ID) > highWater {
				highWater = int64(m.ID)
				stats.HighWater = highWater
			}
			continue
		}

		var senderID int64
		if m.Sender != nil && m.Sender.ID != 0 {
			senderID = int64(m.Sender.ID)
			if _, seen := seenSenders[senderID]; !seen {
				seenSenders[senderID] = struct{}{}
				pendingUsers = append(pendingUsers, storage.User{
					SenderID:    senderID,
					Handle:      m.Sender.Handle,
					DisplayName: m.Sender.DisplayName(),
				})
			}
		}

		exists, err := c.Store.PostExists(ctx, c.SourceID, int64(m.ID))
		if err != nil {
			return stats, fmt.Errorf("dedup check message %d: %w", m.ID, err)
		}
		if exists {
			stats.SkippedDuplicate++
			if int64(m.ID) > highWater {
				highWater = int64(m.ID)
				stats.HighWater = highWater
			}
			continue
		}

		pendingPosts = append(pendingPosts, storage.Post{
			SourceID:  c.SourceID,
			MessageID: int64(m.ID),
			PostedAt:  m.PostedAt(),
			SenderID:  senderID,
			Record:    trips.Extract(body),
		})

		if len(pendingPosts) >= batchSize {
			if err := flush(); err != nil {
				return stats, err
			}
			c.Log.Info().Int("added", stats.Added).Int64("last_id", highWater).
				Msg("batch committed")
		}
	}

	// Final commit and cursor persist happen unconditionally, also when the
	// run added nothing.
	if err := flush(); err != nil {
		return stats, err
	}

	c.Log.Info().
		Int("processed", stats.Processed).
		Int("added", stats.Added).
		Int("skipped_duplicate", stats.SkippedDuplicate).
		Int("failed", stats.Failed).
		Int64("last_id", stats.HighWater).
		Msg("scan finished")
	return stats, nil
}

// commitIndividually is the degraded path after a failed batch: each post is
// committed in its own transaction so one rejected write cannot sink the
// rest. The returned cursor is the highest successfully committed message,
// never past a failure that was not followed by a success.
func (c *Coordinator) commitIndividually(ctx context.Context, users []storage.User, posts []storage.Post, cursor int64, stats *Stats) int64 {
	// Users first; inserts are first-write-wins so repeating them is safe.
	if len(users) > 0 {
		if err := c.Store.CommitBatch(ctx, storage.Batch{SourceID: c.SourceID, Users: users, Cursor: cursor}); err != nil {
			c.Log.Warn().Err(err).Msg("user batch failed")
		}
	}

	for _, p := range posts {
		candidate := cursor
		if p.MessageID > candidate {
			candidate = p.MessageID
		}
		b := storage.Batch{SourceID: c.SourceID, Posts: []storage.Post{p}, Cursor: candidate}
		if err := c.Store.CommitBatch(ctx, b); err != nil {
			stats.Failed++
			c.Log.Error().Err(err).Int64("message_id", p.MessageID).Msg("post rejected")
			continue
		}
		stats.Added++
		cursor = candidate
		c.archive(ctx, []storage.Post{p})
	}
	return cursor
}

func (c *Coordinator) archive(ctx context.Context, posts []storage.Post) {
	if c.Archive == nil || len(posts) == 0 {
		return
	}
	if err := c.Archive.Append(ctx, posts); err != nil {
		c.Log.Warn().Err(err).Msg("archive append failed")
	}
}
