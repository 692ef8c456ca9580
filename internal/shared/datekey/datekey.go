// Package datekey collapses timestamps to canonical day keys. Every per-day
// uniqueness check and range query in the attendance modules goes through it.
package datekey

import (
	"net/http"
	"time"

	"go-hostel/internal/shared/apperror"
)

var ErrInvalidDate = apperror.New(
	apperror.CodeInvalidInput,
	"invalid date, expected YYYY-MM-DD",
	http.StatusBadRequest,
)

// layouts accepted by Parse, tried in order.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Normalize returns t with the time of day zeroed in t's location.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Parse reads a date-like string and returns its day key.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Range returns the inclusive [start, end] span of the day containing t.
// End is 23:59:59.999 so a BETWEEN query catches every timestamp of the day.
func Range(t time.Time) (time.Time, time.Time) {
	start := Normalize(t)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
