package customization

import (
	"encoding/json"
	"time"
)

// Input is a customization as clients send it. created_at stays raw so an
// empty or foreign-format timestamp never fails decoding.
type Input struct {
	Customization
	CreatedAt json.RawMessage `json:"created_at,omitempty"`
}

// Naive timestamps (no zone) are read as UTC.
var clientTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Snapshot keeps the client's created_at when it parses and the zero time
// otherwise. Orders embed customizations this way.
func (in Input) Snapshot() Customization {
	c := in.Customization
	c.CreatedAt = parseClientTime(in.CreatedAt)
	return c
}

func parseClientTime(raw json.RawMessage) time.Time {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	for _, layout := range clientTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
