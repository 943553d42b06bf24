package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Section names recognized in a résumé.
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "competences"
	SectionLanguages  = "langues"
	SectionInterests  = "interets"
)

// sectionKeywords maps each section to the keywords that open it in cleaned
// (lowercased, accent-preserving) text.
var sectionKeywords = map[string][]string{
	SectionExperience: {"expériences", "expérience", "experience", "work history", "employment", "parcours professionnel"},
	SectionEducation:  {"education", "formation", "academic", "études", "diplômes"},
	SectionSkills:     {"compétences", "competences", "technical skills", "skills"},
	SectionLanguages:  {"langues", "languages"},
	SectionInterests:  {"intérêts", "interets", "interests", "hobbies", "centres d intérêt"},
}

// ExtractSections partitions cleaned text into labeled résumé sections. Each
// section runs from the first occurrence of one of its keywords up to the
// first keyword of the next recognized section, or end of text. Sections
// whose keywords never appear map to the empty string.
func ExtractSections(text string) map[string]string {
	sections := map[string]string{
		SectionExperience: "",
		SectionEducation:  "",
		SectionSkills:     "",
		SectionLanguages:  "",
		SectionInterests:  "",
	}

	type marker struct {
		name  string
		start int
	}
	var markers []marker

	for name, keywords := range sectionKeywords {
		first := -1
		for _, kw := range keywords {
			if idx := strings.Index(text, kw); idx >= 0 && (first < 0 || idx < first) {
				first = idx
			}
		}
		if first >= 0 {
			markers = append(markers, marker{name: name, start: first})
		}
	}

	sort.Slice(markers, func(i, j int) bool { return markers[i].start < markers[j].start })

	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		sections[m.name] = strings.TrimSpace(text[m.start:end])
	}

	return sections
}

var (
	// "chez acme" / "at acme corp" introductions of an employer.
	frenchOrgRe  = regexp.MustCompile(`\bchez ([\p{L}\d]+(?: [\p{L}\d]+)?)`)
	englishOrgRe = regexp.MustCompile(`\bat ([\p{L}\d]+(?: [\p{L}\d]+)?)`)
	// Company names followed by a legal-form suffix.
	legalSuffixRe = regexp.MustCompile(`\b([\p{L}\d]+) (sarl|sas|sa|inc|ltd|llc|gmbh)\b`)
)

// ExtractOrganizations finds employer names in cleaned text. The pass is
// best-effort: an English document also goes through a prose NER pass, whose
// model only labels PERSON and GPE, so GPE hits serve as a coarse proxy for
// employer mentions. French relies on "chez X" and legal-suffix heuristics
// (no French model is available). No detectable entity yields an empty list,
// never a failure.
func ExtractOrganizations(text string, lang Language) []string {
	seen := make(map[string]bool)
	var orgs []string

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		orgs = append(orgs, name)
	}

	var introRe *regexp.Regexp
	if lang == LangEnglish {
		introRe = englishOrgRe
	} else {
		introRe = frenchOrgRe
	}
	for _, m := range introRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range legalSuffixRe.FindAllStringSubmatch(text, -1) {
		add(m[1] + " " + m[2])
	}

	if lang == LangEnglish {
		doc, err := prose.NewDocument(text)
		if err == nil {
			for _, ent := range doc.Entities() {
				if ent.Label == "GPE" {
					add(strings.ToLower(ent.Text))
				}
			}
		}
	}

	return orgs
}
