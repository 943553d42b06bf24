package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScoresWeights(t *testing.T) {
	info := KeyInfo{
		SkillCount:      5,
		ExperienceYears: 5,
		WordCount:       250,
	}

	scores := ComputeScores(info, 0.5)

	assert.Equal(t, 50.0, scores.Similarity)
	assert.Equal(t, 50.0, scores.Skills)
	assert.Equal(t, 50.0, scores.Experience)
	assert.Equal(t, 50.0, scores.Quality)
	assert.Equal(t, 50.0, scores.Global)
}

func TestComputeScoresCaps(t *testing.T) {
	info := KeyInfo{
		SkillCount:      25,   // above the cap of 10
		ExperienceYears: 40,   // above the cap of 10
		WordCount:       3000, // above the cap of 500
	}

	scores := ComputeScores(info, 1.0)

	assert.Equal(t, 100.0, scores.Skills)
	assert.Equal(t, 100.0, scores.Experience)
	assert.Equal(t, 100.0, scores.Quality)
	assert.Equal(t, 100.0, scores.Global)
}

func TestComputeScoresEmptyProfile(t *testing.T) {
	scores := ComputeScores(KeyInfo{}, 0)

	assert.Equal(t, 0.0, scores.Global)
	assert.Equal(t, 0.0, scores.Similarity)
	assert.Equal(t, 0.0, scores.Skills)
	assert.Equal(t, 0.0, scores.Experience)
	assert.Equal(t, 0.0, scores.Quality)
}

func TestRecommendationsAllAdvisoriesInOrder(t *testing.T) {
	recs := Recommendations(Scores{})

	assert.Equal(t, []string{
		adviceSimilarity,
		adviceSkills,
		adviceExperience,
		adviceQuality,
	}, recs)
}

func TestRecommendationsSingleAdvisory(t *testing.T) {
	scores := Scores{
		Similarity: 60,
		Skills:     30, // below the 40 threshold
		Experience: 40,
		Quality:    60,
	}

	recs := Recommendations(scores)

	assert.Equal(t, []string{adviceSkills}, recs)
}

func TestRecommendationsPositiveWhenNoRuleTriggers(t *testing.T) {
	scores := Scores{
		Similarity: 80,
		Skills:     70,
		Experience: 50,
		Quality:    90,
	}

	recs := Recommendations(scores)

	assert.Equal(t, []string{advicePositive}, recs)
}

func TestRecommendationsThresholdBoundary(t *testing.T) {
	// Scores exactly at their threshold do not trigger an advisory
	scores := Scores{
		Similarity: thresholdSimilarity,
		Skills:     thresholdSkills,
		Experience: thresholdExperience,
		Quality:    thresholdQuality,
	}

	recs := Recommendations(scores)

	assert.Equal(t, []string{advicePositive}, recs)
}
