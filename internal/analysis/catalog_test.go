package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoleCatalog(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}

	catalog, err := NewRoleCatalog(context.Background(), embedder, DefaultRoleDescriptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"data_scientist", "developpeur_python", "devops", "frontend"}, catalog.Keys())
	assert.True(t, catalog.Has("devops"))
	assert.False(t, catalog.Has("poste_inconnu"))
}

func TestNewRoleCatalogEmbeddingFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("quota exceeded")}

	_, err := NewRoleCatalog(context.Background(), embedder, DefaultRoleDescriptions())
	require.Error(t, err)

	var modelErr *ModelLoadError
	assert.ErrorAs(t, err, &modelErr)
}

func TestRoleCatalogSimilarity(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"role aligné": {1, 0, 0},
		},
		fallback: []float32{1, 0, 0},
	}

	catalog, err := NewRoleCatalog(context.Background(), embedder, map[string]string{
		"cible": "role aligné",
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, catalog.Similarity([]float32{1, 0, 0}, "cible"), 1e-9)
	assert.InDelta(t, 0.0, catalog.Similarity([]float32{0, 1, 0}, "cible"), 1e-9)
}

func TestRoleCatalogSimilarityUnknownRole(t *testing.T) {
	embedder := &fakeEmbedder{fallback: []float32{1, 0, 0}}

	catalog, err := NewRoleCatalog(context.Background(), embedder, DefaultRoleDescriptions())
	require.NoError(t, err)

	assert.Equal(t, 0.0, catalog.Similarity([]float32{1, 0, 0}, "poste_inconnu"))
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
