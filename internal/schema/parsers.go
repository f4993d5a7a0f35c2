package schema

import (
	"strconv"
	"strings"
)

// Cells in the source sheet carry human-entered values: follower counts with
// thousands separators, money with currency symbols, commission as "70%".
// The parsers below are tolerant of those forms and fall back to zero when a
// cell cannot be read as a number.

// ParseCount reads an integer cell, tolerating thousands separators.
func ParseCount(v interface{}) interface{} {
	return int64(parseNumeric(v))
}

// ParseMoney reads a monetary cell, tolerating currency symbols and
// thousands separators.
func ParseMoney(v interface{}) interface{} {
	return parseNumeric(v)
}

// ParseFraction reads a 0-1 fraction cell, tolerating a percent form.
func ParseFraction(v interface{}) interface{} {
	s := strings.TrimSpace(CellString(v))
	if strings.HasSuffix(s, "%") {
		return parseNumeric(strings.TrimSuffix(s, "%")) / 100
	}
	return parseNumeric(v)
}

func parseNumeric(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}

	s := strings.TrimSpace(CellString(v))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '¥', '￥', '$', '€', '£':
			return -1
		}
		return r
	}, s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
