package analysis

import (
	"context"
	"fmt"
	"time"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Outcome is the discriminated result of one analysis run. On success every
// score field is populated; on error only Error is.
type Outcome struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`

	ScoreGlobal     float64  `json:"score_global"`
	ScoreSimilarity float64  `json:"score_similarite"`
	ScoreSkills     float64  `json:"score_competences"`
	ScoreExperience float64  `json:"score_experience"`
	ScoreQuality    float64  `json:"score_qualite"`
	KeyInfo         KeyInfo  `json:"key_info"`
	Recommendations []string `json:"recommendations"`

	// Carried for the persistence layer, not serialized to callers.
	Document *ExtractedDocument `json:"-"`
	Vector   []float32          `json:"-"`
}

// ErrorOutcome wraps a pipeline failure into the error form of the outcome.
func ErrorOutcome(err error) *Outcome {
	return &Outcome{Status: StatusError, Error: err.Error()}
}

// Analyzer runs the résumé scoring pipeline: extract, clean, detect
// language, split sections and entities, aggregate features, embed, score.
// The run is a single linear pass; any stage failure aborts it with no
// partial result.
type Analyzer struct {
	extractor TextExtractor
	embedder  Embedder
	catalog   *RoleCatalog
}

func NewAnalyzer(extractor TextExtractor, embedder Embedder, catalog *RoleCatalog) *Analyzer {
	return &Analyzer{
		extractor: extractor,
		embedder:  embedder,
		catalog:   catalog,
	}
}

// Analyze scores the document at filePath against roleKey. Extraction errors
// keep their type (ErrUnsupportedFormat, ExtractionError); any other stage
// failure is wrapped in a PipelineError.
func (a *Analyzer) Analyze(ctx context.Context, filePath, roleKey string) (*Outcome, error) {
	raw, err := a.extractor.ExtractText(filePath)
	if err != nil {
		return nil, err
	}

	cleaned := CleanText(raw)
	lang := DetectLanguage(cleaned)
	sections := ExtractSections(cleaned)

	doc := &ExtractedDocument{
		RawText:     raw,
		CleanedText: cleaned,
		Language:    lang,
		Sections:    sections,
		Skills:      ExtractSkills(cleaned),
		Experience: ExperienceInfo{
			TotalYears:    ExtractExperienceYears(cleaned, time.Now()),
			Organizations: ExtractOrganizations(cleaned, lang),
		},
		WordCount: WordCount(cleaned),
	}

	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Stage: "features", Err: err}
	}

	vector, err := a.embedder.Embed(ctx, cleaned)
	if err != nil {
		return nil, &PipelineError{Stage: "embedding", Err: fmt.Errorf("failed to embed document: %w", err)}
	}

	similarity := a.catalog.Similarity(vector, roleKey)

	info := doc.Summarize()
	scores := ComputeScores(info, similarity)

	return &Outcome{
		Status:          StatusSuccess,
		ScoreGlobal:     scores.Global,
		ScoreSimilarity: scores.Similarity,
		ScoreSkills:     scores.Skills,
		ScoreExperience: scores.Experience,
		ScoreQuality:    scores.Quality,
		KeyInfo:         info,
		Recommendations: Recommendations(scores),
		Document:        doc,
		Vector:          vector,
	}, nil
}
