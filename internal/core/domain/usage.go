package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// UsageEvent describes one use (or removal) of a Mediaflow file on a page.
// It is built per request and forwarded to Mediaflow, never persisted.
type UsageEvent struct {
	MediaflowID int64
	PostID      int64
	Contact     string
	Removed     bool
	OccurredAt  string // formatted YYYY-MM-DD HH:MM:SS
}

// LooseInt accepts a JSON number or a numeric string. The picker widget
// serialises IDs inconsistently between the two, so both must parse. An
// unparseable value decodes to zero rather than failing the request.
type LooseInt int64

func (l *LooseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			*l = 0
			return nil
		}
		*l = LooseInt(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		// Non-integer number; truncate like the original's intval.
		var f float64
		if ferr := json.Unmarshal(data, &f); ferr != nil {
			*l = 0
			return nil
		}
		*l = LooseInt(int64(f))
		return nil
	}
	*l = LooseInt(n)
	return nil
}

// LooseBool accepts truthy booleans, numbers and strings the way the
// original coerced its "removed" flag: true, 1, "1", "true", "on" and "yes"
// are true, anything else (including absence) is false.
type LooseBool bool

func (l *LooseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = false

	switch {
	case len(data) == 0 || string(data) == "null":
		return nil
	case string(data) == "true":
		*l = true
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "true", "on", "yes":
			*l = true
		}
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return nil
		}
		if n == 1 {
			*l = true
		}
		return nil
	}
}
