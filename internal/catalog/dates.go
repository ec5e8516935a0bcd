package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Release date payloads arrive either as bare calendar dates or as full
// timestamps, with or without fractional seconds or a zone offset.
var releaseDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatReleaseDate canonicalizes a release date string to YYYY-MM-DD.
// Unparseable input yields an error rather than a degraded string.
func FormatReleaseDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("release date is empty")
	}
	for _, layout := range releaseDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("release date %q is not a recognized date", value)
}
