package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISOLayout matches JavaScript's Date.prototype.toISOString output.
const ISOLayout = "2006-01-02T15:04:05.000Z"

type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	ISOLayout,
	time.RFC3339Nano,
	time.RFC3339,
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp format (string expected): %w", err)
	}

	if s == "" {
		ts.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			ts.Time = t
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp: %s", s)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Time.IsZero() {
		return []byte(`null`), nil
	}

	return json.Marshal(ts.Time.UTC().Format(ISOLayout))
}
