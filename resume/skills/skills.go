// Package skills extracts known skill terms from resume text against a
// closed vocabulary.
package skills

import (
	"sort"
	"strings"
	"unicode"
)

// Vocabulary is the closed list of recognized skills. Multi-word
// phrases are matched by containment on the lowercased text; single
// words by token equality.
var Vocabulary = []string{
	"python", "java", "sql", "flask", "django",
	"html", "css", "javascript",
	"machine learning", "ai",
}

// Stopwords never hit the vocabulary today; the filter stays as a
// safety net for future vocabulary entries.
var stopwords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "is": {}, "to": {}, "in": {},
	"of": {}, "for": {}, "with": {}, "a": {}, "an": {}, "on": {},
}

// Extract returns the deduplicated, sorted set of vocabulary skills
// present in the text. The result is always a subset of Vocabulary.
func Extract(text string) []string {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	found := make(map[string]struct{})
	for _, entry := range Vocabulary {
		if strings.Contains(entry, " ") {
			if strings.Contains(lower, entry) {
				found[entry] = struct{}{}
			}
			continue
		}
		if _, ok := tokens[entry]; ok {
			found[entry] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

func tokenize(lower string) map[string]struct{} {
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, ok := stopwords[word]; ok {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}
