package numbering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		seq   int
		year  int
		month time.Month
		want  string
	}{
		{7, 2026, time.March, "007/III/06/2026"},
		{152, 2025, time.December, "152/XII/06/2025"},
		{1, 2024, time.January, "001/I/06/2024"},
		{12, 2026, time.June, "012/VI/06/2026"},
		{999, 2026, time.August, "999/VIII/06/2026"},
		{1000, 2026, time.September, "1000/IX/06/2026"},
	}

	for _, tt := range tests {
		at := time.Date(tt.year, tt.month, 15, 10, 0, 0, 0, time.UTC)
		got, err := Format(tt.seq, at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatRejectsNonPositive(t *testing.T) {
	at := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, err := Format(0, at)
	assert.Error(t, err)
	_, err = Format(-3, at)
	assert.Error(t, err)
}

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		1: "I", 2: "II", 3: "III", 4: "IV", 5: "V", 6: "VI",
		7: "VII", 8: "VIII", 9: "IX", 10: "X", 11: "XI", 12: "XII",
		1999: "MCMXCIX",
	}
	for n, want := range cases {
		assert.Equal(t, want, ToRoman(n))
	}
}
