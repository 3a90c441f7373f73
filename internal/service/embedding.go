package service

import (
	"hash/fnv"
	"math"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/nutricheck/backend/internal/models"
)

// GenerateEmbedding returns a deterministic embedding for short names: character
// trigrams of the lower-cased, space-padded text hashed into a fixed number of
// buckets and L2-normalized. Similar spellings land close together.
func GenerateEmbedding(text string) pgvector.Vector {
	vec := make([]float32, models.EmbeddingDimensions)
	padded := []rune(" " + strings.ToLower(strings.Join(strings.Fields(text), " ")) + " ")

	for i := 0; i+3 <= len(padded); i++ {
		h := fnv.New32a()
		_, _ = h.Write([]byte(string(padded[i : i+3])))
		vec[h.Sum32()%uint32(len(vec))]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return pgvector.NewVector(vec)
}
