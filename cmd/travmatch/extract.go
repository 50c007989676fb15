package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"travmatch/internal/feed"
	"travmatch/internal/trips"
)

// extractOut pairs a message with its extracted record for JSON output.
type extractOut struct {
	MessageID int64        `json:"message_id"`
	PostedAt  string       `json:"posted_at,omitempty"`
	Record    trips.Record `json:"record"`
}

func newExtractCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
		format  string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Parse a JSONL message dump and print extracted records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			src := &feed.JSONLSource{Path: inPath}
			msgs, err := src.Fetch(cmd.Context(), 0)
			if err != nil {
				return err
			}

			rows := make([]extractOut, 0, len(msgs))
			for _, m := range msgs {
				body := strings.TrimSpace(m.Text)
				if body == "" {
					continue
				}
				rec := trips.Extract(body)
				// Keep only flight-like posts unless -all is given.
				if !all && rec.OriginCity == "" && rec.DestinationCity == "" && rec.DateText == "" {
					continue
				}
				o := extractOut{MessageID: int64(m.ID), Record: rec}
				if t := m.PostedAt(); !t.IsZero() {
					o.PostedAt = t.Format("2006-01-02T15:04:05Z")
				}
				rows = append(rows, o)
			}

			if format == "csv" {
				return writeCSV(out, rows)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "", "input JSONL file")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or csv")
	cmd.Flags().BoolVar(&all, "all", false, "include posts with no flight-like fields")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func writeCSV(out io.Writer, rows []extractOut) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"message_id", "date_utc", "type_tag",
		"origin", "origin_area", "origin_code",
		"destination", "destination_area", "destination_code",
		"flight_date_text", "flight_time_text", "flight_date",
		"airline", "contact_handles", "contact_phones", "raw_text",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, o := range rows {
		r := o.Record
		rec := []string{
			fmt.Sprintf("%d", o.MessageID), o.PostedAt, r.TypeTag,
			r.OriginCity, r.OriginArea, r.OriginCode,
			r.DestinationCity, r.DestinationArea, r.DestinationCode,
			r.DateText, r.TimeText, r.DateISO(),
			r.Airline,
			strings.Join(r.ContactHandles, ";"),
			strings.Join(r.ContactPhones, ";"),
			r.RawText,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}
