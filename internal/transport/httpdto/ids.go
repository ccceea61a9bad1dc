package httpdto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NumericID is an id that clients may send either as a JSON number or as a
// numeric string ("7"). An empty string and null both leave it zero.
type NumericID uint64

func (id *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*id = 0
			return nil
		}
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = NumericID(value)
	return nil
}

// Ptr returns the id as *uint64, nil when id is absent or zero.
func (id *NumericID) Ptr() *uint64 {
	if id == nil || *id == 0 {
		return nil
	}
	value := uint64(*id)
	return &value
}
