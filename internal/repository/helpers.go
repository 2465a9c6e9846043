package repository

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound signals a lookup miss. Callers that treat absence as a
// fresh-state case match it with errors.Is.
var ErrNotFound = errors.New("not found")

// parseNullableTime reads an optional timestamp column. NULL, empty and
// unparseable values all come back nil; corrupt rows degrade to absent
// rather than failing the scan.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString prepares an optional timestamp for binding: nil
// stores SQL NULL, anything else the formatted string.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
