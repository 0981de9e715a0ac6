package report

import "strings"

// escaper replaces the five HTML-significant characters. strings.Replacer
// scans left to right without re-examining output, so "&" never gets
// escaped twice.
//
//nolint:gochecknoglobals // Replacer is immutable and safe for concurrent use.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape makes text safe for interpolation into element content and
// quoted attribute values. It is not idempotent.
func Escape(text string) string {
	return escaper.Replace(text)
}
