package printing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indonesianDays = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var dateSeparators = regexp.MustCompile(`[-/]`)

// ParseDate accepts the date shapes that show up in stored form data:
// DD-MM-YYYY, YYYY-MM-DD (with - or / separators), and RFC3339-ish strings.
// Two-digit years pivot around the current year so "99" is 1999 but "25" is
// 2025. The boolean is false when the input is not a recognizable date.
func ParseDate(input string) (time.Time, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, false
	}

	parts := dateSeparators.Split(input, -1)
	if len(parts) == 3 {
		var day, month, year int
		var err [3]error
		if len(parts[0]) == 4 {
			year, err[0] = strconv.Atoi(parts[0])
			month, err[1] = strconv.Atoi(parts[1])
			day, err[2] = strconv.Atoi(parts[2])
		} else {
			p0, e0 := strconv.Atoi(parts[0])
			p1, e1 := strconv.Atoi(parts[1])
			p2, e2 := strconv.Atoi(parts[2])
			err[0], err[1], err[2] = e0, e1, e2

			if p2 < 100 {
				pivot := time.Now().Year() % 100
				if p2 > pivot+2 {
					p2 += 1900
				} else {
					p2 += 2000
				}
			}

			switch {
			case p0 > 12: // unambiguously day first
				day, month, year = p0, p1, p2
			case p1 > 12: // month written first
				day, month, year = p1, p0, p2
			default:
				day, month, year = p0, p1, p2
			}
		}
		if err[0] != nil || err[1] != nil || err[2] != nil {
			return time.Time{}, false
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, input); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTTL renders the "place, date of birth" line: "CILACAP, 17 Agustus
// 1999". When the date cannot be parsed the uppercased place stands alone, or
// "-" when both are missing.
func FormatTTL(place, dateInput string) string {
	city := strings.ToUpper(strings.TrimSpace(place))

	t, ok := ParseDate(dateInput)
	if !ok {
		if city == "" {
			return "-"
		}
		return city
	}

	return fmt.Sprintf("%s, %d %s %d", city, t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// FormatFullDate renders a long Indonesian date with weekday: "Selasa, 17
// Agustus 1999". Unparseable input is returned as-is (or "-" when empty) so
// the citizen's literal wording still prints.
func FormatFullDate(dateInput string) string {
	t, ok := ParseDate(dateInput)
	if !ok {
		if strings.TrimSpace(dateInput) == "" {
			return "-"
		}
		return dateInput
	}

	return fmt.Sprintf("%s, %02d %s %d",
		indonesianDays[int(t.Weekday())], t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// FormatIssueDate renders the short form used next to signatures: "17 Agustus
// 2026".
func FormatIssueDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
