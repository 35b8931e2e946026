package models

// TokenResponse is returned by register and login. The same token is also
// mirrored in the Authorization response header.
type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// MatchResponse is the outcome of a face or voice verification attempt.
// Exactly one of Distance or Similarity is populated depending on the
// modality's metric.
type MatchResponse struct {
	// Match reports the threshold decision for this attempt.
	Match bool `json:"match"`

	// Distance is the Euclidean distance to the enrolled face template.
	Distance *float64 `json:"distance,omitempty"`

	// Similarity is the cosine similarity to the enrolled voice template.
	Similarity *float64 `json:"similarity,omitempty"`
}

// DescriptorResponse returns a stored biometric template to its owner.
type DescriptorResponse struct {
	Descriptor Descriptor `json:"descriptor"`
}

// AckResponse is a minimal success acknowledgement for mutating calls
// that have no other payload (enrollment).
type AckResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
