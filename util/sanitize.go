package util

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var XSSPolicy = bluemonday.UGCPolicy()

const maxSanitizeRounds = 8

// XSSSanitize sanitizes of HTML and returns the unescaped HTML.
// Unescaping can surface markup that was entity encoded, so the value is
// sanitized again until it stops changing.
func XSSSanitize(val string) string {
	for i := 0; i < maxSanitizeRounds; i++ {
		next := html.UnescapeString(XSSPolicy.Sanitize(val))
		if next == val {
			return strings.TrimSpace(next)
		}
		val = next
	}
	return strings.TrimSpace(XSSPolicy.Sanitize(val))
}
