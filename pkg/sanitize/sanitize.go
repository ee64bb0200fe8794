// Package sanitize reduces admin form input to single-line plain text.
package sanitize

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy       = bluemonday.StrictPolicy()
	whitespaceRe = regexp.MustCompile(`[\r\n\t ]+`)
	octetRe      = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// TextField strips markup, line breaks and percent-encoded octets from value and
// trims the result. Invalid UTF-8 yields an empty string. A "<" that is not part
// of a tag survives as "&lt;".
func TextField(value string) string {
	if value == "" || !utf8.ValidString(value) {
		return ""
	}

	out := html.UnescapeString(policy.Sanitize(value))
	out = strings.ReplaceAll(out, "<", "&lt;")
	out = whitespaceRe.ReplaceAllString(out, " ")

	for octetRe.MatchString(out) {
		out = octetRe.ReplaceAllString(out, "")
	}
	return strings.TrimSpace(out)
}
