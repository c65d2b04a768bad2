package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layouts accepted from billers and the web client, tried in order.
var ledgerTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LedgerTime is a timestamp that tolerates payloads with or without a
// timezone offset. Values are emitted as RFC3339.
type LedgerTime struct {
	time.Time
}

// NewLedgerTime wraps a time.Time into a LedgerTime
func NewLedgerTime(t time.Time) LedgerTime {
	return LedgerTime{Time: t}
}

// UnmarshalJSON parses a timestamp from any of the accepted layouts
func (lt *LedgerTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		lt.Time = time.Time{}
		return nil
	}

	for _, layout := range ledgerTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			lt.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format: %q", s)
}

// MarshalJSON emits the timestamp as RFC3339, or null when unset
func (lt LedgerTime) MarshalJSON() ([]byte, error) {
	if lt.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(lt.Time.Format(time.RFC3339))
}

// Value implements driver.Valuer for database writes
func (lt LedgerTime) Value() (driver.Value, error) {
	if lt.Time.IsZero() {
		return nil, nil
	}
	return lt.Time, nil
}

// Scan implements sql.Scanner for database reads
func (lt *LedgerTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		lt.Time = time.Time{}
		return nil
	case time.Time:
		lt.Time = v
		return nil
	case []byte:
		return lt.UnmarshalJSON([]byte(`"` + string(v) + `"`))
	case string:
		return lt.UnmarshalJSON([]byte(`"` + v + `"`))
	default:
		return fmt.Errorf("cannot scan %T into LedgerTime", value)
	}
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}
