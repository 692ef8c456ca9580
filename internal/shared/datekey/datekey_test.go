package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	in := time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.Local)
	got := Normalize(in)

	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
}

func TestParse(t *testing.T) {
	got, err := Parse("2025-03-14")
	assert.NoError(t, err)
	assert.Equal(t, Normalize(got), got)
	assert.Equal(t, 14, got.Day())

	got, err = Parse("2025-03-14T18:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	_, err = Parse("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRange(t *testing.T) {
	day, _ := Parse("2025-03-14")
	start, end := Range(day.Add(13 * time.Hour))

	assert.Equal(t, day, start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	// end stays inside the same day
	assert.Equal(t, start.Day(), end.Day())
	assert.True(t, end.Before(start.Add(24*time.Hour)))
}
