package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// skillsVocabulary is the fixed technical-skill catalog matched against
// résumé text.
var skillsVocabulary = []string{
	"python", "java", "javascript", "html", "css", "react", "angular",
	"vue", "django", "flask", "node.js", "sql", "nosql", "mongodb",
	"postgresql", "docker", "kubernetes", "aws", "azure", "git",
}

// ExtractSkills returns the subset of the skill vocabulary present in
// cleaned text, case-insensitive substring match, deduplicated.
func ExtractSkills(text string) []string {
	var found []string
	for _, skill := range skillsVocabulary {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// WordCount counts whitespace-delimited tokens in cleaned text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Year spans in cleaned text. Punctuation between years is already gone, so
// "2018-2022" arrives as "2018 2022"; explicit connectors survive as words.
var yearSpanRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s+(?:à\s+|au\s+|to\s+|until\s+)?((?:19|20)\d{2}|présent|present|aujourd hui|aujourdhui|now|today|current)\b`)

// ExtractExperienceYears estimates total professional experience by summing
// the year spans mentioned in cleaned text. Open-ended spans count up to the
// current year. Implausible spans (reversed or longer than 50 years) are
// ignored.
func ExtractExperienceYears(text string, now time.Time) float64 {
	currentYear := now.Year()
	var total float64

	for _, m := range yearSpanRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		end := currentYear
		if y, err := strconv.Atoi(m[2]); err == nil {
			end = y
		}

		span := end - start
		if span < 0 || span > 50 {
			continue
		}
		total += float64(span)
	}

	return total
}
