package profile

import (
	"encoding/json"
	"time"
)

// Entry is one keyed JSON document in the profile store. The PWA keeps its
// habits, goals, and settings here; the server never interprets the value.
type Entry struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}
