package tui

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Printer is safe for concurrent use and expensive to build.
var printer = message.NewPrinter(language.English)

// timeLayout is used for post and comment timestamps.
const timeLayout = "Jan 2, 2006 15:04"

// FormatCount renders n with thousands separators and the matching noun.
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, singular)
	}
	return printer.Sprintf("%d %s", n, plural)
}

// FormatTime renders a timestamp in local time, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}
