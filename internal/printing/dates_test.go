package printing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"17-08-1999", time.Date(1999, time.August, 17, 0, 0, 0, 0, time.Local)},
		{"1999-08-17", time.Date(1999, time.August, 17, 0, 0, 0, 0, time.Local)},
		{"17/08/1999", time.Date(1999, time.August, 17, 0, 0, 0, 0, time.Local)},
		// First component above 12 forces day-first reading.
		{"25-03-2020", time.Date(2020, time.March, 25, 0, 0, 0, 0, time.Local)},
		// Second component above 12 flips to month-first.
		{"03-25-2020", time.Date(2020, time.March, 25, 0, 0, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		require.True(t, ok, "ParseDate(%q)", tc.in)
		assert.Equal(t, tc.want.Year(), got.Year(), tc.in)
		assert.Equal(t, tc.want.Month(), got.Month(), tc.in)
		assert.Equal(t, tc.want.Day(), got.Day(), tc.in)
	}
}

func TestParseDateTwoDigitYearPivot(t *testing.T) {
	pivot := time.Now().Year()%100 + 2

	got, ok := ParseDate("01-01-05")
	require.True(t, ok)
	assert.Equal(t, 2005, got.Year())

	late := pivot + 50
	gotLate, ok := ParseDate(time.Date(1900+late, 1, 1, 0, 0, 0, 0, time.Local).Format("02-01-06"))
	require.True(t, ok)
	assert.Equal(t, 1900+late, gotLate.Year())
}

func TestParseDateUnparseable(t *testing.T) {
	for _, in := range []string{"", "entah kapan", "12-13"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, in)
	}
}

func TestFormatTTL(t *testing.T) {
	assert.Equal(t, "CILACAP, 17 Agustus 1999", FormatTTL("Cilacap", "17-08-1999"))
	// Place survives alone when the date cannot be read.
	assert.Equal(t, "CILACAP", FormatTTL("Cilacap", "tidak diketahui"))
	assert.Equal(t, "-", FormatTTL("", "tidak diketahui"))
}

func TestFormatFullDate(t *testing.T) {
	// 17 August 1999 was a Tuesday.
	assert.Equal(t, "Selasa, 17 Agustus 1999", FormatFullDate("1999-08-17"))
	// Unreadable input passes through untouched.
	assert.Equal(t, "besok sore", FormatFullDate("besok sore"))
	assert.Equal(t, "-", FormatFullDate(""))
}
