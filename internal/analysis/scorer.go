package analysis

import "math"

// Fixed scoring weights. Their sum is 1.0 so the global score stays within
// [0, 100].
const (
	weightSimilarity = 0.4
	weightSkills     = 0.3
	weightExperience = 0.2
	weightQuality    = 0.1
)

// Normalization caps for the sub-scores.
const (
	skillsCap     = 10.0  // skills counted before the sub-score saturates
	experienceCap = 10.0  // years of experience before saturation
	qualityCap    = 500.0 // words before the length sub-score saturates
)

// Advisory thresholds, on the 0-100 scale.
const (
	thresholdSimilarity = 50.0
	thresholdSkills     = 40.0
	thresholdExperience = 30.0
	thresholdQuality    = 50.0
)

// Advisory strings emitted by the recommendation rules.
const (
	adviceSimilarity = "Le CV ne correspond pas bien au poste visé"
	adviceSkills     = "Compétences techniques insuffisantes pour ce poste"
	adviceExperience = "Expérience professionnelle limitée"
	adviceQuality    = "Le CV pourrait être plus détaillé"
	advicePositive   = "Profil bien adapté au poste"
)

// Scores carries the four weighted sub-scores and the global score, all on
// the 0-100 scale, rounded to two decimals.
type Scores struct {
	Global     float64 `json:"score_global"`
	Similarity float64 `json:"score_similarite"`
	Skills     float64 `json:"score_competences"`
	Experience float64 `json:"score_experience"`
	Quality    float64 `json:"score_qualite"`
}

// ComputeScores combines the aggregated features and the similarity score
// into the weighted composite. similarity is expected in [0, 1].
func ComputeScores(info KeyInfo, similarity float64) Scores {
	skillsScore := math.Min(float64(info.SkillCount)/skillsCap, 1.0)
	experienceScore := math.Min(info.ExperienceYears/experienceCap, 1.0)
	qualityScore := math.Min(float64(info.WordCount)/qualityCap, 1.0)

	global := weightSimilarity*similarity +
		weightSkills*skillsScore +
		weightExperience*experienceScore +
		weightQuality*qualityScore

	return Scores{
		Global:     round2(global * 100),
		Similarity: round2(similarity * 100),
		Skills:     round2(skillsScore * 100),
		Experience: round2(experienceScore * 100),
		Quality:    round2(qualityScore * 100),
	}
}

// Recommendations applies the fixed advisory rules to the sub-scores. The
// advisories keep a fixed order (similarity, skills, experience, quality);
// when no rule triggers a single positive string is returned.
func Recommendations(s Scores) []string {
	var recs []string

	if s.Similarity < thresholdSimilarity {
		recs = append(recs, adviceSimilarity)
	}
	if s.Skills < thresholdSkills {
		recs = append(recs, adviceSkills)
	}
	if s.Experience < thresholdExperience {
		recs = append(recs, adviceExperience)
	}
	if s.Quality < thresholdQuality {
		recs = append(recs, adviceQuality)
	}

	if len(recs) == 0 {
		recs = append(recs, advicePositive)
	}
	return recs
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
