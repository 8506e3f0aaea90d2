package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.May, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, 0, d.Hour())

	_, err = ParseDate("05/01/2026")
	require.Error(t, err)
}

func TestCombineClockWallTime(t *testing.T) {
	date, err := ParseDate("2026-05-01")
	require.NoError(t, err)

	combined, err := CombineClock(date, "10:30:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", combined.Format("2006-01-02"))
	assert.Equal(t, "10:30:00", combined.Format("15:04:05"))
	assert.Equal(t, time.UTC, combined.Location())
}

func TestCombineClockAcceptsFullTimestamp(t *testing.T) {
	date, err := ParseDate("2026-05-01")
	require.NoError(t, err)

	// The timestamp's own date and offset are discarded; only the wall clock
	// survives, combined with the given event date.
	combined, err := CombineClock(date, "2026-12-25T18:30:00-06:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", combined.Format("2006-01-02"))
	assert.Equal(t, "18:30:00", combined.Format("15:04:05"))
}

func TestCombineClockRejectsGarbage(t *testing.T) {
	date, err := ParseDate("2026-05-01")
	require.NoError(t, err)

	_, err = CombineClock(date, "half past ten")
	require.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", FormatDate(d))
}
