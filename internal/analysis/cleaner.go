package analysis

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Keep word characters, whitespace and accented Latin letters; every
	// other rune becomes a space and is collapsed afterwards.
	disallowedRe = regexp.MustCompile(`[^\w\sàâäéèêëîïôöùûüçÀÂÄÉÈÊËÎÏÔÖÙÛÜÇ]`)
)

// CleanText normalizes raw résumé text: collapse whitespace runs to single
// spaces, strip non-linguistic characters, lowercase. Total and idempotent;
// an empty input yields an empty output.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = disallowedRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}
