package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"travmatch/internal/config"
	"travmatch/internal/storage"
)

// newReportCmd prints per-route post counts from the archive, busiest first.
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print post counts per route from the archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			setLogLevel(cfg.LogLevel)
			if !cfg.Archive.Enabled {
				return fmt.Errorf("archive is not enabled in the configuration")
			}

			sink, err := storage.OpenArchive(cmd.Context(), cfg.Archive.ClickHouse)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer func() { _ = sink.Close() }()

			counts, err := sink.RouteCounts(cmd.Context())
			if err != nil {
				return err
			}

			routes := make([]string, 0, len(counts))
			for route := range counts {
				routes = append(routes, route)
			}
			sort.Slice(routes, func(i, j int) bool {
				if counts[routes[i]] != counts[routes[j]] {
					return counts[routes[i]] > counts[routes[j]]
				}
				return routes[i] < routes[j]
			})

			for _, route := range routes {
				fmt.Printf("%-9s %d\n", route, counts[route])
			}
			return nil
		},
	}
}
