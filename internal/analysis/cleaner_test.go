package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace runs",
			input:    "Jean  Dupont\n\nDéveloppeur\t\tPython",
			expected: "jean dupont développeur python",
		},
		{
			name:     "strips punctuation",
			input:    "C++, SQL & Docker! (5 ans)",
			expected: "c sql docker 5 ans",
		},
		{
			name:     "keeps accented letters",
			input:    "Compétences: développement À L'ÉTRANGER",
			expected: "compétences développement à l étranger",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	input := "Jean Dupont - Développeur Python (Paris), 2018-2022!"
	once := CleanText(input)
	twice := CleanText(once)
	assert.Equal(t, once, twice)
}
