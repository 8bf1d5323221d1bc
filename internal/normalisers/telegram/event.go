package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Event is one record of a telegram-history-dump export, one JSON
// object per line. Only the fields the pipeline reads are declared.
type Event struct {
	Kind    string      `json:"event"`
	ID      looseString `json:"id"`
	ReplyID looseString `json:"reply_id"`
	Date    int64       `json:"date"`
	From    Peer        `json:"from"`
	To      Peer        `json:"to"`
	Text    string      `json:"text"`
	Media   *Media      `json:"media"`
}

// Peer describes a message participant.
type Peer struct {
	Type      string `json:"peer_type"`
	ID        int64  `json:"peer_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
}

// Media is the tagged payload attached to a message. Type selects the
// variant; the remaining fields are variant-specific.
type Media struct {
	Type        string      `json:"type"`
	Caption     looseString `json:"caption"`
	Title       looseString `json:"title"`
	Description looseString `json:"description"`
	Author      looseString `json:"author"`
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
}

// ParseEvent decodes one export line.
func ParseEvent(line []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(line, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}

// Ingestible reports whether the event should reach normalisation:
// a message event carrying text or media. Everything else (service
// events, empty messages) is filtered before Normalise is called.
func (ev Event) Ingestible() bool {
	return ev.Kind == "message" && (ev.Text != "" || ev.Media != nil)
}

// looseString accepts JSON strings, numbers and booleans and keeps the
// textual form. Export files are not strict about scalar types, e.g.
// numeric captions or IDs.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = looseString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = looseString(num.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = looseString(strconv.FormatBool(b))
		return nil
	}

	return fmt.Errorf("unsupported scalar: %s", data)
}
