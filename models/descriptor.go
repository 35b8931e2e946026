package models

// Modality identifies which biometric factor a descriptor belongs to.
// The two modalities use different extractors, different expected lengths,
// and different comparison metrics.
type Modality string

const (
	// FaceModality marks face descriptors produced by the face extractor.
	// Face templates have a fixed expected length (128 floats).
	FaceModality Modality = "face"

	// VoiceModality marks voice descriptors produced by the voice
	// embedding service. Voice templates have a minimum viable length
	// rather than an exact one.
	VoiceModality Modality = "voice"
)

// Descriptor is a fixed-length numeric feature vector produced by a
// biometric extractor. Both enrolled templates and transient captured
// samples share this shape.
//
// A Descriptor arriving from a client is untrusted until it has passed the
// validation gate in the biometric package; code past that boundary may
// assume non-empty, finite contents.
type Descriptor []float64

// Clone returns an independent copy of the descriptor.
// Used when a stored template must not alias request-scoped memory.
func (d Descriptor) Clone() Descriptor {
	if d == nil {
		return nil
	}
	out := make(Descriptor, len(d))
	copy(out, d)
	return out
}

// IsZero reports whether the descriptor is absent or empty.
// An empty descriptor is treated identically to "not enrolled".
func (d Descriptor) IsZero() bool {
	return len(d) == 0
}
