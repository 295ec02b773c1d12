package domain

import (
	"strconv"
	"strings"
)

// MonthYear is the sortable form of a "January 2026" style date. The zero value is the
// sentinel for anything that does not parse.
type MonthYear struct {
	Year  int
	Month int
}

var months = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// ParseMonthYear reads "<MonthName> <Year>". An unknown month name, a missing year or a
// year without leading digits all yield MonthYear{}.
func ParseMonthYear(s string) MonthYear {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return MonthYear{}
	}
	month, ok := months[strings.ToLower(parts[0])]
	if !ok {
		return MonthYear{}
	}
	year := leadingInt(parts[1])
	if year == 0 {
		return MonthYear{}
	}
	return MonthYear{Year: year, Month: month}
}

// Valid reports whether the date parsed.
func (m MonthYear) Valid() bool {
	return m.Year != 0 && m.Month != 0
}

// Compare orders newest first: negative when m is later than o.
func (m MonthYear) Compare(o MonthYear) int {
	if m.Year != o.Year {
		return o.Year - m.Year
	}
	return o.Month - m.Month
}

func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
