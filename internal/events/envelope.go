package events

import (
	"encoding/json"
)

// Envelope is the frame written to every realtime channel.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Encode wraps data in an envelope named event and marshals it once, so a
// broadcast can hand the same bytes to every channel.
func Encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
