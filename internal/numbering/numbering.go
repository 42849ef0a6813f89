// Package numbering formats official document numbers for approved letters.
package numbering

import (
	"fmt"
	"strings"
	"time"
)

// VillageCode is the fixed administrative code embedded in every document
// number.
const VillageCode = "06"

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman converts a positive integer to Roman numerals.
func ToRoman(n int) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}

// Format builds "007/III/06/2026" from a raw sequence number and the date of
// assignment: zero-padded sequence, month as Roman numerals, village code,
// year. The date is the assignment date, not the submission date.
func Format(seq int, at time.Time) (string, error) {
	if seq <= 0 {
		return "", fmt.Errorf("sequence number must be positive")
	}
	return fmt.Sprintf("%03d/%s/%s/%d", seq, ToRoman(int(at.Month())), VillageCode, at.Year()), nil
}
