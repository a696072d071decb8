package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const excerptLength = 200

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases title, collapses every run of characters outside
// [a-z0-9] into one hyphen and trims hyphens from both ends.
func Slugify(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// Excerpt returns the first 200 characters of content followed by "...", or
// content unchanged when it is short enough.
func Excerpt(content string) string {
	if utf8.RuneCountInString(content) <= excerptLength {
		return content
	}
	return string([]rune(content)[:excerptLength]) + "..."
}
