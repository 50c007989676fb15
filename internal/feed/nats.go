package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSSource drains pending messages from a NATS subject. The scraper that
// owns the channel session publishes one JSON document per post; a fetch
// reads until the subject goes quiet.
type NATSSource struct {
	URL     string
	Subject string

	// IdleTimeout ends a fetch after this long without a new message.
	IdleTimeout time.Duration
}

// Fetch connects, drains the subject and returns messages newer than
// afterID in arrival order.
func (s *NATSSource) Fetch(ctx context.Context, afterID int64) ([]*Message, error) {
	idle := s.IdleTimeout
	if idle <= 0 {
		idle = 5 * time.Second
	}

	nc, err := nats.Connect(s.URL, nats.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	defer nc.Close()

	sub, err := nc.SubscribeSync(s.Subject)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", s.Subject, err)
	}
	defer func() { _ = sub.Unsubscribe() }()

	var out []*Message
	for {
		msg, err := sub.NextMsg(idle)
		if errors.Is(err, nats.ErrTimeout) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("next message: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m := Decode(msg.Data)
		if m == nil || int64(m.ID) <= afterID {
			continue
		}
		out = append(out, m)
	}
}
