package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCountIgnoresMarkup(t *testing.T) {
	assert.Equal(t, 2, WordCount("<p>one</p><p>two</p>"))
	assert.Equal(t, 0, WordCount("<p></p><br/>"))
	assert.Equal(t, 3, WordCount("plain text here"))
}

func TestReadingTimeCeiling(t *testing.T) {
	words := make([]string, 200)
	for i := range words {
		words[i] = "kelime"
	}
	exactly200 := "<p>" + strings.Join(words, " ") + "</p>"
	assert.Equal(t, 1, ReadingTime(exactly200))

	with201 := exactly200 + " fazla"
	assert.Equal(t, 2, ReadingTime(with201))

	assert.Equal(t, 0, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("tek"))
}

func TestMetaDescriptionHardCut(t *testing.T) {
	excerpt := strings.Repeat("abcde ", 50) // 300 chars
	got := MetaDescription("<p>ignored</p>", excerpt)
	assert.Len(t, []rune(got), 160)
	assert.Equal(t, []rune(excerpt)[:160], []rune(got))
	assert.False(t, strings.HasSuffix(got, "..."))
}

func TestMetaDescriptionFallsBackToContent(t *testing.T) {
	got := MetaDescription("<h1>Başlık</h1><p>kısa   açıklama</p>", "  ")
	assert.Equal(t, "Başlık kısa açıklama", got)
}
