package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutricheck/backend/internal/models"
)

func distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func TestGenerateEmbedding(t *testing.T) {
	milk := GenerateEmbedding("Milk").Slice()
	assert.Len(t, milk, models.EmbeddingDimensions)

	var norm float64
	for _, v := range milk {
		norm += float64(v * v)
	}
	assert.InDelta(t, 1.0, norm, 1e-5)

	assert.Equal(t, milk, GenerateEmbedding("  milk ").Slice(), "case and spacing are ignored")

	oatMilk := GenerateEmbedding("oat milk").Slice()
	rice := GenerateEmbedding("basmati rice").Slice()
	assert.Less(t, distance(milk, oatMilk), distance(milk, rice))
}

func TestGenerateEmbeddingEmpty(t *testing.T) {
	vec := GenerateEmbedding("").Slice()
	assert.Len(t, vec, models.EmbeddingDimensions)
}
