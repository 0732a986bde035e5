package extract

import (
	"strings"
	"unicode"
)

// defaultStopwords are common English function words that carry no
// signal against a hand-curated vocabulary.
var defaultStopwords = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "any",
	"can", "had", "her", "was", "one", "our", "out", "has", "his",
	"how", "its", "may", "new", "now", "old", "see", "two", "who",
	"did", "get", "him", "this", "that", "with", "from", "they",
	"will", "would", "there", "their", "what", "about", "which",
	"when", "were", "been", "have", "into", "more", "than", "them",
	"then", "these", "those", "some", "such", "only", "over", "also",
	"your", "should", "could", "very", "just", "because", "while",
	"where", "after", "before", "between", "both", "each", "other",
	"most", "much", "many", "does", "being",
}

// KeywordExtractor turns raw text into a normalized, ordered set of
// candidate keywords. No stemming beyond case-folding: over-aggressive
// normalization risks false matches against the curated canon vocabulary.
type KeywordExtractor struct {
	stopwords map[string]struct{}
	minLength int
}

// NewKeywordExtractor creates an extractor with the built-in stopword
// list plus any extra stopwords, dropping tokens shorter than minLength.
func NewKeywordExtractor(minLength int, extraStopwords []string) *KeywordExtractor {
	if minLength <= 0 {
		minLength = 3
	}

	stops := make(map[string]struct{}, len(defaultStopwords)+len(extraStopwords))
	for _, w := range defaultStopwords {
		stops[w] = struct{}{}
	}
	for _, w := range extraStopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}

	return &KeywordExtractor{
		stopwords: stops,
		minLength: minLength,
	}
}

// Extract lowercases, splits on whitespace/punctuation, drops short
// tokens and stopwords, and deduplicates preserving first-seen order.
// Text with no qualifying tokens yields an empty slice, not an error.
func (e *KeywordExtractor) Extract(text string) []string {
	var keywords []string
	seen := make(map[string]bool)
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := cleanToken(current.String())
		current.Reset()

		if len(word) < e.minLength {
			return
		}
		if isNumericOnly(word) {
			return
		}
		if _, stop := e.stopwords[word]; stop {
			return
		}
		if seen[word] {
			return
		}
		seen[word] = true
		keywords = append(keywords, word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return keywords
}

// cleanToken strips leading/trailing hyphens and collapses repeats
func cleanToken(token string) string {
	token = strings.Trim(token, "-")
	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}
	return token
}

// isNumericOnly filters pure-numeric tokens (low semantic value).
// Mixed tokens like "gpt-4" or "web3" are kept.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
