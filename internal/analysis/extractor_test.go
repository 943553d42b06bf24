package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	content := "Jean Dupont\nDéveloppeur Python chez Acme"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	extractor := NewTextExtractor()
	text, err := extractor.ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText("cv.exe")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextMissingFile(t *testing.T) {
	extractor := NewTextExtractor()

	_, err := extractor.ExtractText(filepath.Join(t.TempDir(), "absent.txt"))

	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestStripXMLTags(t *testing.T) {
	input := `<w:t>Jean Dupont</w:t></w:p><w:t>Développeur</w:t>`
	assert.Equal(t, "Jean Dupont\nDéveloppeur", stripXMLTags(input))
}
