package seo

import (
	"regexp"
	"strings"
)

const wordsPerMinute = 200

var (
	htmlTags   = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// StripHTML replaces tags with spaces and collapses the remaining whitespace.
func StripHTML(html string) string {
	s := htmlTags.ReplaceAllString(html, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// WordCount counts whitespace-separated tokens in the content after tag
// stripping.
func WordCount(html string) int {
	text := StripHTML(html)
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}

// ReadingTime estimates reading minutes at 200 words per minute, rounding up.
func ReadingTime(html string) int {
	words := WordCount(html)
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// MetaDescription derives a description of at most 160 characters. A
// non-empty excerpt wins over the content; either way the cut is a hard one,
// no ellipsis and no word-boundary snapping.
func MetaDescription(html, excerpt string) string {
	if strings.TrimSpace(excerpt) != "" {
		return truncate(excerpt, 160)
	}
	return truncate(StripHTML(html), 160)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
