package models

// RegisterRequest is the JSON body of POST /api/register.
type RegisterRequest struct {
	// Username is the unique handle the user wants to register.
	Username string `json:"username"`

	// Email is the contact address for the new account.
	Email string `json:"email"`

	// Password is the plaintext password, hashed with bcrypt before
	// storage. Never logged and never persisted as-is.
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DescriptorRequest carries a captured biometric sample descriptor for the
// enroll and verify endpoints. The descriptor is untrusted input and must
// pass the validation gate before any matching or storage happens.
type DescriptorRequest struct {
	Descriptor Descriptor `json:"descriptor"`
}
