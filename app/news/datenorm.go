package news

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Explicit layouts tried in order before any permissive parsing. Sources emit
// a small set of known formats; everything else goes through the fallbacks.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
	"2006/01/02",
	"02/01/2006",
}

var looseDatePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

// NormalizeDate turns a raw source date string into a UTC timestamp. It never
// fails: unparseable input degrades to the current time with a logged warning,
// so callers must tolerate timestamp noise rather than treat it as fatal.
func NormalizeDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC()
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}

	if m := looseDatePattern.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		yearStr := m[3]
		if len(yearStr) == 2 {
			yearStr = "20" + yearStr
		}
		year, _ := strconv.Atoi(yearStr)

		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		}
	}

	if t, err := dateparse.ParseAny(raw); err == nil {
		return t.UTC()
	}

	slog.Warn("Could not parse date string, using current time", "value", raw)
	return time.Now().UTC()
}
