package biometric

import "errors"

// Sentinel errors returned by the descriptor validation gate.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidDescriptor is the umbrella error for any descriptor that
	// fails the validation gate. The more specific sentinels below wrap it.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrDescriptorEmpty is returned for nil or zero-length descriptors.
	ErrDescriptorEmpty = errors.New("descriptor is empty")

	// ErrDescriptorTooShort is returned when the descriptor is shorter
	// than the modality's minimum viable length.
	ErrDescriptorTooShort = errors.New("descriptor is shorter than the minimum viable length")

	// ErrDescriptorWrongLength is returned when a fixed-length modality
	// (face) receives a descriptor of any other length.
	ErrDescriptorWrongLength = errors.New("descriptor length does not match the extractor output length")

	// ErrDescriptorNotFinite is returned when the descriptor contains NaN
	// or infinite values, which would make the matcher arithmetic
	// meaningless.
	ErrDescriptorNotFinite = errors.New("descriptor contains non-finite values")
)
