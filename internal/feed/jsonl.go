package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source delivers raw messages newer than a cursor, in delivery order.
type Source interface {
	// Fetch returns messages with ID greater than afterID.
	Fetch(ctx context.Context, afterID int64) ([]*Message, error)
}

// JSONLSource reads messages from a JSONL export file, one JSON document per
// line, flat or wrapped.
type JSONLSource struct {
	Path string
}

// Fetch reads the whole file and keeps messages newer than afterID, in file
// order. Blank and undecodable lines are skipped.
func (s *JSONLSource) Fetch(ctx context.Context, afterID int64) ([]*Message, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open feed file: %w", err)
	}
	defer f.Close()
	return decodeLines(ctx, f, afterID)
}

func decodeLines(ctx context.Context, r io.Reader, afterID int64) ([]*Message, error) {
	scanner := bufio.NewScanner(r)
	// Exported posts can be long; bump the line buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var out []*Message
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m := Decode([]byte(line))
		if m == nil || int64(m.ID) <= afterID {
			continue
		}
		out = append(out, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read feed file: %w", err)
	}
	return out, nil
}
