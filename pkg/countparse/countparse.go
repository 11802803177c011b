package countparse

import (
	"strconv"
	"strings"
)

// Subscribers parses a subscriber display string like "1.2M subscribers"
// into an absolute count. Returns false when no number can be extracted.
func Subscribers(text string) (int64, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}

	token := strings.ToUpper(fields[0])
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(token, "B"):
		multiplier = 1_000_000_000
		token = strings.TrimSuffix(token, "B")
	case strings.HasSuffix(token, "M"):
		multiplier = 1_000_000
		token = strings.TrimSuffix(token, "M")
	case strings.HasSuffix(token, "K"):
		multiplier = 1_000
		token = strings.TrimSuffix(token, "K")
	}

	n, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return int64(n * float64(multiplier)), true
}
