package reconcile

import (
	"strconv"
	"strings"
)

// NormalizeID strips the fractional part that a numeric identifier picks up
// when it travels through a float-typed JSON field ("38.0" -> "38").
// Non-numeric strings are returned unchanged and an empty input stays empty.
func NormalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return ""
	}

	dot := strings.IndexByte(id, '.')
	if dot < 0 {
		return id
	}

	f, err := strconv.ParseFloat(id, 64)
	if err != nil {
		return id
	}

	integral := id[:dot]
	if integral == "" || integral == "-" || integral == "+" || strings.ContainsAny(id, "eE") {
		return strconv.FormatInt(int64(f), 10)
	}
	if _, err = strconv.ParseInt(integral, 10, 64); err != nil {
		return id
	}
	return integral
}
