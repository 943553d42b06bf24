package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Language
	}{
		{
			name:     "french text",
			text:     "le développement de la plateforme est au coeur de mes expériences et le résultat est solide",
			expected: LangFrench,
		},
		{
			name:     "english text",
			text:     "the platform is built with go and the services are deployed daily",
			expected: LangEnglish,
		},
		{
			name:     "no stop words defaults to french",
			text:     "python docker kubernetes aws",
			expected: LangFrench,
		},
		{
			name:     "tie defaults to french",
			text:     "le the",
			expected: LangFrench,
		},
		{
			name:     "empty text defaults to french",
			text:     "",
			expected: LangFrench,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguage(tt.text))
		})
	}
}

func TestDetectLanguageCountsOccurrences(t *testing.T) {
	// One english stop word repeated outweighs several distinct french ones
	text := "the the the the le la"
	assert.Equal(t, LangEnglish, DetectLanguage(text))
}
