package biometric

import (
	"math"

	"github.com/Blocci/Art-Connect/models"
)

// Sentinel scores returned by the comparators for degenerate inputs.
// Both guarantee a mismatch at any sane threshold.
const (
	// MismatchDistance is returned by FaceDistance when the two vectors
	// cannot be meaningfully compared (different or zero lengths).
	// "Infinitely different" — never matches at any finite threshold.
	MismatchDistance = math.MaxFloat64

	// MismatchSimilarity is returned by VoiceSimilarity when the vectors
	// cannot be compared or either has zero magnitude. Cosine similarity
	// of real vectors lies in [-1, 1], so -1 never clears a positive
	// threshold.
	MismatchSimilarity = -1.0
)

// Policy bundles the numeric thresholds and descriptor-length rules for
// both modalities. All values come from configuration; call sites must not
// carry their own literals.
type Policy struct {
	// FaceDistanceThreshold is the maximum Euclidean distance at which a
	// captured face sample still matches the enrolled template.
	FaceDistanceThreshold float64

	// VoiceSimilarityThreshold is the minimum cosine similarity at which a
	// captured voice sample matches the enrolled template.
	VoiceSimilarityThreshold float64

	// FaceDescriptorLength is the exact length the face extractor produces.
	FaceDescriptorLength int

	// VoiceDescriptorMinLength is the minimum viable voice embedding length.
	VoiceDescriptorMinLength int
}

// DefaultPolicy mirrors the extractor models in use: face-api.js 128-float
// descriptors matched at distance 0.6, resemblyzer embeddings matched at
// cosine similarity 0.75.
func DefaultPolicy() Policy {
	return Policy{
		FaceDistanceThreshold:    0.6,
		VoiceSimilarityThreshold: 0.75,
		FaceDescriptorLength:     128,
		VoiceDescriptorMinLength: 10,
	}
}

// FaceDistance computes the Euclidean distance between two descriptors.
//
// Mismatched-length or empty inputs yield [MismatchDistance] so that a
// malformed comparison can never produce a false match.
func FaceDistance(sample, template models.Descriptor) float64 {
	if len(sample) == 0 || len(sample) != len(template) {
		return MismatchDistance
	}

	var sum float64
	for i := range sample {
		d := sample[i] - template[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// VoiceSimilarity computes the cosine similarity between two descriptors:
// dot product divided by the product of magnitudes.
//
// Mismatched-length, empty, or zero-magnitude inputs yield
// [MismatchSimilarity] instead of dividing by zero.
func VoiceSimilarity(sample, template models.Descriptor) float64 {
	if len(sample) == 0 || len(sample) != len(template) {
		return MismatchSimilarity
	}

	var dot, magSample, magTemplate float64
	for i := range sample {
		dot += sample[i] * template[i]
		magSample += sample[i] * sample[i]
		magTemplate += template[i] * template[i]
	}

	if magSample == 0 || magTemplate == 0 {
		return MismatchSimilarity
	}

	return dot / (math.Sqrt(magSample) * math.Sqrt(magTemplate))
}

// MatchFace compares a captured face sample against the enrolled template
// and applies the policy threshold: match = distance < threshold.
func (p Policy) MatchFace(sample, template models.Descriptor) (distance float64, match bool) {
	distance = FaceDistance(sample, template)
	return distance, distance < p.FaceDistanceThreshold
}

// MatchVoice compares a captured voice sample against the enrolled template
// and applies the policy threshold: match = similarity >= threshold.
func (p Policy) MatchVoice(sample, template models.Descriptor) (similarity float64, match bool) {
	similarity = VoiceSimilarity(sample, template)
	return similarity, similarity >= p.VoiceSimilarityThreshold
}
