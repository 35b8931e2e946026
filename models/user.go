package models

import "time"

// User represents an account entity used for authentication.
// It carries identity attributes, the credential hash, and the optional
// enrolled biometric templates. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user handle used during authentication.
	Username string `json:"username"`

	// Email is the contact address supplied at registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	PasswordHash string `json:"-"`

	// FaceDescriptor is the enrolled face template. An empty or nil slice
	// means the face factor has not been enrolled yet.
	FaceDescriptor Descriptor `json:"-"`

	// VoiceDescriptor is the enrolled voice template. An empty or nil slice
	// means the voice factor has not been enrolled yet.
	VoiceDescriptor Descriptor `json:"-"`

	// TemplateVersion is the optimistic-concurrency counter for the
	// biometric templates. Incremented on every successful enrollment so
	// that racing overwrites are detectable at the store layer.
	TemplateVersion int64 `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// HasFaceTemplate reports whether a face template is enrolled.
// A nil or zero-length descriptor is treated identically to "not enrolled".
func (u User) HasFaceTemplate() bool {
	return len(u.FaceDescriptor) > 0
}

// HasVoiceTemplate reports whether a voice template is enrolled.
func (u User) HasVoiceTemplate() bool {
	return len(u.VoiceDescriptor) > 0
}
