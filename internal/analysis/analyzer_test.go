package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder returns canned vectors keyed by input text, falling back to a
// default vector for anything else.
type fakeEmbedder struct {
	vectors  map[string][]float32
	fallback []float32
	err      error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return f.fallback, nil
}

func (f *fakeEmbedder) ModelName() string    { return "fake-embedder" }
func (f *fakeEmbedder) ModelVersion() string { return "test" }

func writeCV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestAnalyzer(t *testing.T, embedder Embedder) *Analyzer {
	t.Helper()
	catalog, err := NewRoleCatalog(context.Background(), embedder, DefaultRoleDescriptions())
	require.NoError(t, err)
	return NewAnalyzer(NewTextExtractor(), embedder, catalog)
}

func TestAnalyzeStrongProfile(t *testing.T) {
	// Rich French CV: five skills, four years of experience, enough text to
	// saturate none of the advisory thresholds.
	content := "Jean Dupont, Développeur Python chez Acme de 2018 à 2022.\n" +
		"Compétences: Python, Django, Docker, AWS, Git.\n" +
		strings.Repeat("Conception et développement de services web pour la plateforme. ", 60)

	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}
	analyzer := newTestAnalyzer(t, embedder)

	outcome, err := analyzer.Analyze(context.Background(), writeCV(t, content), "developpeur_python")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, 100.0, outcome.ScoreSimilarity)
	assert.Equal(t, 50.0, outcome.ScoreSkills)
	assert.Equal(t, 40.0, outcome.ScoreExperience)
	assert.Equal(t, 100.0, outcome.ScoreQuality)
	assert.Equal(t, []string{advicePositive}, outcome.Recommendations)

	require.NotNil(t, outcome.Document)
	assert.Equal(t, LangFrench, outcome.Document.Language)
	assert.Equal(t, 5, outcome.KeyInfo.SkillCount)
	assert.Equal(t, 4.0, outcome.KeyInfo.ExperienceYears)
	assert.Contains(t, outcome.Document.Experience.Organizations, "acme de")
	assert.Equal(t, []float32{1, 0, 0}, outcome.Vector)
}

func TestAnalyzeSparseProfile(t *testing.T) {
	content := "Short resume. The candidate is motivated and eager."

	embedder := &fakeEmbedder{fallback: []float32{0, 1, 0}}
	analyzer := newTestAnalyzer(t, embedder)

	outcome, err := analyzer.Analyze(context.Background(), writeCV(t, content), "devops")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, LangEnglish, outcome.Document.Language)
	assert.Equal(t, 100.0, outcome.ScoreSimilarity) // identical fake vectors
	assert.Equal(t, 0.0, outcome.ScoreSkills)
	assert.Equal(t, 0.0, outcome.ScoreExperience)
	assert.Equal(t, []string{
		adviceSkills,
		adviceExperience,
		adviceQuality,
	}, outcome.Recommendations)
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}
	analyzer := newTestAnalyzer(t, embedder)

	outcome, err := analyzer.Analyze(context.Background(), writeCV(t, ""), "devops")
	require.NoError(t, err)

	assert.Equal(t, 0, outcome.KeyInfo.WordCount)
	assert.Empty(t, outcome.KeyInfo.TechnicalSkills)
	assert.Equal(t, 0.0, outcome.ScoreSkills)
	assert.Equal(t, 0.0, outcome.ScoreExperience)
	assert.Equal(t, 0.0, outcome.ScoreQuality)
	// Only the similarity term contributes to the global score
	assert.Equal(t, 40.0, outcome.ScoreGlobal)
}

func TestAnalyzeUnknownRole(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}
	analyzer := newTestAnalyzer(t, embedder)

	outcome, err := analyzer.Analyze(context.Background(), writeCV(t, "profil python"), "poste_inconnu")
	require.NoError(t, err)

	assert.Equal(t, 0.0, outcome.ScoreSimilarity)
	assert.Contains(t, outcome.Recommendations, adviceSimilarity)
}

func TestAnalyzeUnsupportedFormat(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}
	analyzer := newTestAnalyzer(t, embedder)

	_, err := analyzer.Analyze(context.Background(), "cv.exe", "devops")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestAnalyzeEmbeddingFailure(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}
	catalog, err := NewRoleCatalog(context.Background(), embedder, DefaultRoleDescriptions())
	require.NoError(t, err)

	failing := &fakeEmbedder{err: errors.New("backend unavailable")}
	analyzer := NewAnalyzer(NewTextExtractor(), failing, catalog)

	_, err = analyzer.Analyze(context.Background(), writeCV(t, "profil python"), "devops")
	require.Error(t, err)

	var pipelineErr *PipelineError
	require.ErrorAs(t, err, &pipelineErr)
	assert.Equal(t, "embedding", pipelineErr.Stage)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}
	analyzer := newTestAnalyzer(t, embedder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.Analyze(ctx, writeCV(t, "profil python"), "devops")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorOutcome(t *testing.T) {
	outcome := ErrorOutcome(errors.New("extraction failed"))

	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "extraction failed", outcome.Error)
	assert.Zero(t, outcome.ScoreGlobal)
}
