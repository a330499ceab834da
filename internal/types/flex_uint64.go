package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexUint64 is a record id that can be unmarshaled from either a JSON number or a JSON string.
// Site data exported by other tools writes ids as strings.
type FlexUint64 uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] != '"' {
		var n uint64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("FlexUint64: invalid number %s: %w", data, err)
		}
		*f = FlexUint64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexUint64: unexpected type, expected number or string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("FlexUint64: invalid uint64 string %q: %w", s, err)
	}
	*f = FlexUint64(val)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

// Uint64 converts FlexUint64 back to uint64.
func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}

// OptionalID converts an optional id to the form stored by the models. Zero means unset.
func OptionalID(f *FlexUint64) *uint64 {
	if f == nil || *f == 0 {
		return nil
	}
	v := uint64(*f)
	return &v
}

// FlexID wraps an optional model id for export.
func FlexID(id *uint64) *FlexUint64 {
	if id == nil {
		return nil
	}
	v := FlexUint64(*id)
	return &v
}
