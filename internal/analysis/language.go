package analysis

import "strings"

// Language is the detected résumé language.
type Language string

const (
	LangFrench  Language = "fr"
	LangEnglish Language = "en"
)

var (
	frenchStopWords  = []string{"le", "la", "les", "de", "des", "du", "et", "est"}
	englishStopWords = []string{"the", "and", "is", "are", "was", "were"}
)

// DetectLanguage returns the language of cleaned text by counting stop-word
// token occurrences per language. Ties, including the all-zero case, resolve
// to French; the detector never fails.
func DetectLanguage(text string) Language {
	counts := make(map[string]int)
	for _, token := range strings.Fields(text) {
		counts[token]++
	}

	var frCount, enCount int
	for _, w := range frenchStopWords {
		frCount += counts[w]
	}
	for _, w := range englishStopWords {
		enCount += counts[w]
	}

	if enCount > frCount {
		return LangEnglish
	}
	return LangFrench
}
