package catalog

import "strings"

// Stop words excluded from the search index
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "your": true, "when": true, "while": true,
}

// tokenize splits text into words, lowercases, trims punctuation, and removes
// stop words. Duplicates are preserved; callers that need a set deduplicate.
func tokenize(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// containsWord reports whether text contains word as a whole token.
func containsWord(text, word string) bool {
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if strings.Trim(token, ".,!?;:'\"-()[]{}") == word {
			return true
		}
	}
	return false
}
