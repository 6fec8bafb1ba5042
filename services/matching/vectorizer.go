package matching

import (
	"math"
	"sort"

	"shebacare/models"
)

// buildVocabulary collects the union of all skill labels offered across
// caregivers into a lexicographically sorted vocabulary, so vector
// positions are reproducible across process restarts.
func buildVocabulary(caregivers []models.Caregiver) []string {
	seen := make(map[string]struct{})
	for i := range caregivers {
		for _, skill := range caregivers[i].Services {
			seen[skill] = struct{}{}
		}
	}
	vocab := make([]string, 0, len(seen))
	for skill := range seen {
		vocab = append(vocab, skill)
	}
	sort.Strings(vocab)
	return vocab
}

// encodeSkills produces a binary membership vector over the vocabulary.
// Labels outside the vocabulary are silently ignored; an empty skill set
// encodes to the all-zero vector.
func encodeSkills(skills []string, vocab []string) []float64 {
	index := make(map[string]int, len(vocab))
	for i, skill := range vocab {
		index[skill] = i
	}
	vec := make([]float64, len(vocab))
	for _, skill := range skills {
		if i, ok := index[skill]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// cosineSimilarity returns the normalized dot product of two vectors.
// Similarity against an all-zero vector is defined as 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
