package seo

import (
	"regexp"
	"strings"
)

var turkishReplacer = strings.NewReplacer(
	"ç", "c", "Ç", "C",
	"ğ", "g", "Ğ", "G",
	"ı", "i", "İ", "I",
	"ö", "o", "Ö", "O",
	"ş", "s", "Ş", "S",
	"ü", "u", "Ü", "U",
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a free-text title. Turkish characters
// are transliterated before the ASCII cleanup, so "Ürün Çeşidi" becomes
// "urun-cesidi". An empty or whitespace-only title yields "".
func Slugify(title string) string {
	s := turkishReplacer.Replace(title)
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
