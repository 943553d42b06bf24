package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	text := CleanText("Expert Python et Django, déploiements Docker sur AWS, versionné avec Git")

	skills := ExtractSkills(text)

	assert.ElementsMatch(t, []string{"python", "django", "docker", "aws", "git"}, skills)
}

func TestExtractSkillsSubstringMatch(t *testing.T) {
	// "javascript" contains "java"; both vocabulary entries match
	skills := ExtractSkills("développeur javascript")

	assert.Contains(t, skills, "javascript")
	assert.Contains(t, skills, "java")
}

func TestExtractSkillsNone(t *testing.T) {
	assert.Empty(t, ExtractSkills("profil commercial sans technologie"))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 4, WordCount("un deux trois quatre"))
}

func TestExtractExperienceYears(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "explicit span with connector",
			text:     "développeur 2018 à 2022",
			expected: 4,
		},
		{
			name:     "dash span arrives space separated after cleaning",
			text:     CleanText("ingénieur 2015-2017"),
			expected: 2,
		},
		{
			name:     "open ended span counts to current year",
			text:     "consultant 2019 présent",
			expected: 5,
		},
		{
			name:     "multiple spans are summed",
			text:     "2010 à 2013 puis 2015 à 2020",
			expected: 8,
		},
		{
			name:     "reversed span ignored",
			text:     "2022 2018",
			expected: 0,
		},
		{
			name:     "implausible span ignored",
			text:     "1950 à 2024",
			expected: 0,
		},
		{
			name:     "no years",
			text:     "profil junior motivé",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractExperienceYears(tt.text, now))
		})
	}
}
