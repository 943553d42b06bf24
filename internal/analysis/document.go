package analysis

// ExperienceInfo summarizes the professional-experience signals found in a
// résumé.
type ExperienceInfo struct {
	TotalYears    float64  `json:"duree_total"`
	Organizations []string `json:"entreprises"`
}

// ExtractedDocument is the typed record flowing through one pipeline run.
// It exists only for the duration of the run; the persistence layer stores
// it as the raw-extraction blob of the analysis result.
type ExtractedDocument struct {
	RawText     string            `json:"raw_text"`
	CleanedText string            `json:"cleaned_text"`
	Language    Language          `json:"language"`
	Sections    map[string]string `json:"sections"`
	Skills      []string          `json:"competences"`
	Experience  ExperienceInfo    `json:"experience"`
	WordCount   int               `json:"word_count"`
}

// KeyInfo is the condensed candidate profile reported with the scores.
type KeyInfo struct {
	TechnicalSkills   []string `json:"competences_techniques"`
	SkillCount        int      `json:"nombre_competences"`
	ExperienceYears   float64  `json:"duree_experience"`
	OrganizationCount int      `json:"nombre_entreprises"`
	Language          Language `json:"langue"`
	WordCount         int      `json:"taille_cv"`
}

// Summarize builds the key-info view of an extracted document.
func (d *ExtractedDocument) Summarize() KeyInfo {
	return KeyInfo{
		TechnicalSkills:   d.Skills,
		SkillCount:        len(d.Skills),
		ExperienceYears:   d.Experience.TotalYears,
		OrganizationCount: len(d.Experience.Organizations),
		Language:          d.Language,
		WordCount:         d.WordCount,
	}
}
