package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSections(t *testing.T) {
	text := CleanText(`
		Jean Dupont
		Expérience professionnelle: 5 ans chez Acme
		Formation: Master informatique
		Compétences: Python, Docker
		Langues: français, anglais
	`)

	sections := ExtractSections(text)

	assert.Contains(t, sections[SectionExperience], "5 ans chez acme")
	assert.Contains(t, sections[SectionEducation], "master informatique")
	assert.Contains(t, sections[SectionSkills], "python docker")
	assert.Contains(t, sections[SectionLanguages], "français anglais")
	assert.Empty(t, sections[SectionInterests])
}

func TestExtractSectionsAllKeysPresent(t *testing.T) {
	sections := ExtractSections("texte sans aucun titre reconnu")

	expected := []string{
		SectionExperience, SectionEducation, SectionSkills,
		SectionLanguages, SectionInterests,
	}
	for _, name := range expected {
		_, ok := sections[name]
		assert.True(t, ok, "missing section %q", name)
		assert.Empty(t, sections[name])
	}
}

func TestExtractSectionsSpanToNextMarker(t *testing.T) {
	sections := ExtractSections("experience backend developer education msc computer science")

	assert.Equal(t, "experience backend developer", sections[SectionExperience])
	assert.Equal(t, "education msc computer science", sections[SectionEducation])
}

func TestExtractOrganizationsFrench(t *testing.T) {
	text := CleanText("Développeur chez Acme puis ingénieur chez Globex Corporation et consultant pour Initech SARL")

	orgs := ExtractOrganizations(text, LangFrench)

	assert.Contains(t, orgs, "acme puis")
	assert.Contains(t, orgs, "globex corporation")
	assert.Contains(t, orgs, "initech sarl")
}

func TestExtractOrganizationsEnglish(t *testing.T) {
	text := CleanText("Software engineer at Acme and later at Globex Inc")

	orgs := ExtractOrganizations(text, LangEnglish)

	assert.NotEmpty(t, orgs)
	assert.Contains(t, orgs, "acme and")
}

func TestExtractOrganizationsNoneFound(t *testing.T) {
	orgs := ExtractOrganizations("profil sans employeur mentionné", LangFrench)
	assert.Empty(t, orgs)
}
