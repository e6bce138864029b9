package helper

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrimDash = regexp.MustCompile(`^-+|-+$`)
)

// GenerateSlug lowercases, strips non-alphanumerics and collapses to dashes.
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugTrimDash.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = strings.Trim(s[:100], "-")
	}
	return s
}
