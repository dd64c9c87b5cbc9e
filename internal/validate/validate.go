package validate

import (
	"strconv"
	"strings"
)

// Rating checks a review rating: integer 1..5.
func Rating(n int) bool { return n >= 1 && n <= 5 }

// RatingArg parses a CLI-supplied rating string.
func RatingArg(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, Rating(n)
}

// Comment trims a review body and rejects empty ones.
func Comment(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 500 {
		return "", false
	}
	return s, true
}

// Author validates a displayable name with a reasonable max length.
func Author(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// ProductID parses a catalog product id.
func ProductID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Q normalizes a search query: trims and clamps length. An empty result
// means "no search filter".
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	} // clamp to avoid abuse
	return s
}
