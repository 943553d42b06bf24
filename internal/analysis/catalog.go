package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// DefaultRoleDescriptions is the fixed set of target-role descriptions used
// as similarity anchors.
func DefaultRoleDescriptions() map[string]string {
	return map[string]string{
		"developpeur_python": "Développeur Python expérimenté avec Django, Flask, et machine learning",
		"data_scientist":     "Data scientist avec expérience en ML, statistiques, et big data",
		"devops":             "Ingénieur DevOps avec Kubernetes, Docker, AWS et CI/CD",
		"frontend":           "Développeur Frontend React, Angular, Vue.js avec expérience UI/UX",
	}
}

type roleEntry struct {
	description string
	vector      []float32
}

// RoleCatalog holds the precomputed embedding per target role. Built once at
// startup and read-only afterwards, so it is safe to share across
// concurrent analysis runs.
type RoleCatalog struct {
	entries map[string]roleEntry
}

// NewRoleCatalog embeds every role description. Any embedding failure during
// construction surfaces as a ModelLoadError.
func NewRoleCatalog(ctx context.Context, embedder Embedder, descriptions map[string]string) (*RoleCatalog, error) {
	entries := make(map[string]roleEntry, len(descriptions))

	for key, desc := range descriptions {
		vec, err := embedder.Embed(ctx, desc)
		if err != nil {
			return nil, &ModelLoadError{Err: fmt.Errorf("failed to embed role %q: %w", key, err)}
		}
		entries[key] = roleEntry{description: desc, vector: vec}
	}

	return &RoleCatalog{entries: entries}, nil
}

// Similarity returns the cosine similarity between a CV vector and the
// catalog entry for roleKey. An unknown role yields 0.0, not an error.
func (c *RoleCatalog) Similarity(cvVector []float32, roleKey string) float64 {
	entry, ok := c.entries[roleKey]
	if !ok {
		return 0.0
	}
	return cosineSimilarity(cvVector, entry.vector)
}

// Has reports whether roleKey is in the catalog.
func (c *RoleCatalog) Has(roleKey string) bool {
	_, ok := c.entries[roleKey]
	return ok
}

// Keys lists the catalog's role keys in sorted order.
func (c *RoleCatalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
