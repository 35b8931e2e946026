package biometric

import (
	"fmt"
	"math"

	"github.com/Blocci/Art-Connect/models"
)

// Validate is the validation gate every inbound descriptor passes before it
// is accepted into enrollment or verification logic.
//
// Rules:
//   - the descriptor must be non-empty;
//   - face descriptors must have exactly [Policy.FaceDescriptorLength]
//     elements; voice descriptors at least [Policy.VoiceDescriptorMinLength];
//   - every element must be finite (no NaN, no ±Inf).
//
// On failure the returned error wraps [ErrInvalidDescriptor]; no state
// transition happens and no stored template may be touched.
func (p Policy) Validate(d models.Descriptor, modality models.Modality) error {
	if d.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidDescriptor, ErrDescriptorEmpty)
	}

	switch modality {
	case models.FaceModality:
		if len(d) != p.FaceDescriptorLength {
			return fmt.Errorf("%w: %w: got %d, want %d",
				ErrInvalidDescriptor, ErrDescriptorWrongLength, len(d), p.FaceDescriptorLength)
		}
	case models.VoiceModality:
		if len(d) < p.VoiceDescriptorMinLength {
			return fmt.Errorf("%w: %w: got %d, want at least %d",
				ErrInvalidDescriptor, ErrDescriptorTooShort, len(d), p.VoiceDescriptorMinLength)
		}
	default:
		return fmt.Errorf("%w: unknown modality %q", ErrInvalidDescriptor, modality)
	}

	for i, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %w: element %d",
				ErrInvalidDescriptor, ErrDescriptorNotFinite, i)
		}
	}

	return nil
}
