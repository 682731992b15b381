package seo

import (
	"sort"
	"strings"
)

// stopwords covers the Turkish and English filler words skipped during
// keyword extraction.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// Turkish
		"acaba", "ama", "ancak", "artık", "aslında", "ayrıca", "bana", "bazı",
		"belki", "benden", "beni", "benim", "beri", "bile", "birkaç", "birçok",
		"biri", "birisi", "birşey", "bizden", "bize", "bizi", "bizim", "böyle",
		"böylece", "bunda", "bundan", "bunlar", "bunları", "bunların", "bunu",
		"bunun", "burada", "bütün", "çünkü", "daha", "dahi", "değil", "diğer",
		"diye", "eğer", "gibi", "hangi", "hatta", "hem", "henüz", "hepsi",
		"hiç", "için", "iken", "ile", "ilgili", "ise", "işte", "kadar",
		"karşın", "kendi", "kendine", "kime", "kimi", "kimse", "madem",
		"nasıl", "neden", "nedenle", "nerde", "nerede", "nereye", "niye",
		"niçin", "olan", "olarak", "oldu", "olduğu", "olmak", "olur", "onlar",
		"onların", "onu", "onun", "öyle", "rağmen", "sadece", "sanki", "şey",
		"siz", "sizden", "size", "sizi", "sizin", "şöyle", "şuna", "şunda",
		"şunlar", "şunu", "tüm", "vardı", "veya", "yani", "yine", "yoksa",
		"zaten", "bir", "ve", "bu", "da", "de", "en", "her", "mi", "ne", "o",
		"çok", "var", "yok",
		// English
		"about", "above", "after", "again", "against", "all", "and", "any",
		"are", "because", "been", "before", "being", "below", "between",
		"both", "but", "can", "does", "doing", "down", "during", "each",
		"few", "for", "from", "further", "had", "has", "have", "having",
		"her", "here", "hers", "him", "his", "how", "into", "its", "itself",
		"just", "more", "most", "not", "now", "off", "once", "only", "other",
		"our", "ours", "out", "over", "own", "same", "she", "should", "some",
		"such", "than", "that", "the", "their", "theirs", "them", "then",
		"there", "these", "they", "this", "those", "through", "too", "under",
		"until", "very", "was", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "you", "your", "yours",
	} {
		stopwords[w] = struct{}{}
	}
}

// letterSet reports whether every rune of the token is a Turkish or English
// letter.
func letterSet(token string) bool {
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			continue
		}
		switch r {
		case 'ç', 'ğ', 'ı', 'ö', 'ş', 'ü':
			continue
		}
		return false
	}
	return true
}

// Keywords extracts the ten most frequent meaningful words from a title and
// its HTML content, joined with ", ". Tokens of length three or shorter,
// stopwords, and tokens containing non-letter characters are skipped. Ties
// keep first-seen order.
func Keywords(title, html string) string {
	text := strings.ToLower(StripHTML(title + " " + html))

	counts := make(map[string]int)
	var order []string
	for _, token := range strings.Fields(text) {
		if len([]rune(token)) <= 3 {
			continue
		}
		if _, skip := stopwords[token]; skip {
			continue
		}
		if !letterSet(token) {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 10 {
		order = order[:10]
	}
	return strings.Join(order, ", ")
}
