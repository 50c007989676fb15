// Package feed provides the raw message model and the sources that deliver
// messages for ingestion: JSONL export files and a NATS subject.
package feed

import (
	"encoding/json"
	"strconv"
	"time"
)

// FlexInt64 handles JSON fields that can be either string or number.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexInt64(i)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*f = 0
			return nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			*f = 0
			return nil // unparseable IDs are dropped silently
		}
		*f = FlexInt64(i)
		return nil
	}

	*f = 0
	return nil
}

// Sender describes who posted a message. Exports are sloppy about sender
// metadata, so every field except ID may be empty; ID zero means the sender
// is unknown.
type Sender struct {
	ID        FlexInt64 `json:"id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Handle    string    `json:"username,omitempty"`
}

// DisplayName joins the name parts, skipping whichever is missing.
func (s *Sender) DisplayName() string {
	switch {
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	default:
		return s.LastName
	}
}

// Message is one raw post from a source channel. This can be populated
// directly from flat JSON or extracted from a Wrapper.
type Message struct {
	ID        FlexInt64 `json:"id"`
	Timestamp string    `json:"date,omitempty"` // RFC 3339, UTC
	Text      string    `json:"message"`
	Sender    *Sender   `json:"sender,omitempty"`
}

// Wrapper is the envelope some exporters put around a message.
type Wrapper struct {
	Message *Message `json:"message"`
}

// PostedAt parses the message timestamp; the zero time is returned when the
// field is absent or malformed.
func (m *Message) PostedAt() time.Time {
	if m.Timestamp == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, m.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Decode parses one JSON document into a Message, accepting both the flat
// shape and the wrapper envelope. It returns nil when neither shape yields a
// message with an ID.
func Decode(b []byte) *Message {
	var w Wrapper
	if err := json.Unmarshal(b, &w); err == nil && w.Message != nil && w.Message.ID != 0 {
		return w.Message
	}

	var m Message
	if err := json.Unmarshal(b, &m); err == nil && m.ID != 0 {
		return &m
	}
	return nil
}
