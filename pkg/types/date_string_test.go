package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2026-07-01")
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-07-01"), d)

	_, err = NewDateStringFromString("01.07.2026")
	assert.Error(t, err)

	_, err = NewDateStringFromString("2026-13-01")
	assert.Error(t, err)
}

func TestDateStringOrdering(t *testing.T) {
	a := DateString("2026-07-01")
	b := DateString("2026-07-02")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))

	// Lexicographic order matches chronological order across months and years
	assert.True(t, DateString("2026-09-30").IsBefore(DateString("2026-10-01")))
	assert.True(t, DateString("2026-12-31").IsBefore(DateString("2027-01-01")))
}

func TestDateStringTime(t *testing.T) {
	d := DateString("2026-07-01")
	parsed, err := d.Time()
	require.NoError(t, err)

	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.July, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
}

func TestDateStringScan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan("2026-07-01"))
	assert.Equal(t, DateString("2026-07-01"), d)

	require.NoError(t, d.Scan([]byte("2026-07-02")))
	assert.Equal(t, DateString("2026-07-02"), d)

	day := time.Date(2026, time.July, 3, 15, 30, 0, 0, time.Local)
	require.NoError(t, d.Scan(day))
	assert.Equal(t, DateString("2026-07-03"), d)

	assert.Error(t, d.Scan(42))
}

func TestDateStringValueRejectsInvalid(t *testing.T) {
	_, err := DateString("not-a-date").Value()
	assert.Error(t, err)

	v, err := DateString("2026-07-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01", v)
}
