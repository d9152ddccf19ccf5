// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from client-supplied text fields.
// Group names and descriptions are plain text; anything that looks like
// HTML is removed before the value reaches the store.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements and attributes from s, unescapes the
// surviving entities, and trims surrounding whitespace.
func Strip(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
