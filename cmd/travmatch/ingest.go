package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"travmatch/internal/config"
	"travmatch/internal/feed"
	"travmatch/internal/ingest"
	"travmatch/internal/storage"
)

func newIngestCmd() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Scan the configured source and ingest new posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			setLogLevel(cfg.LogLevel)
			if batchSize > 0 {
				cfg.BatchSize = batchSize
			}
			return runIngest(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "posts per commit (default 50)")
	return cmd
}

func runIngest(parent context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	var archive *storage.ArchiveSink
	if cfg.Archive.Enabled {
		archive, err = storage.OpenArchive(ctx, cfg.Archive.ClickHouse)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer func() { _ = archive.Close() }()
	}

	coord := &ingest.Coordinator{
		Source:    newSource(cfg.Source),
		SourceID:  cfg.Source.ID,
		Store:     store,
		Archive:   archive,
		Search:    cfg.Source.Search,
		BatchSize: cfg.BatchSize,
		Log:       log,
	}

	stats, err := coord.Run(ctx)
	if err != nil {
		return fmt.Errorf("ingest run: %w", err)
	}

	fmt.Printf("done: processed=%d added=%d skipped_duplicate=%d failed=%d last_id=%d\n",
		stats.Processed, stats.Added, stats.SkippedDuplicate, stats.Failed, stats.HighWater)
	return nil
}

func newSource(cfg config.SourceConfig) feed.Source {
	if cfg.Kind == "nats" {
		return &feed.NATSSource{
			URL:         cfg.NATSURL,
			Subject:     cfg.Subject,
			IdleTimeout: 5 * time.Second,
		}
	}
	return &feed.JSONLSource{Path: cfg.Path}
}
