package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTemplateNotFound is returned when a biometric template is requested
	// for a user who has not enrolled that modality. A stored descriptor of
	// length zero is treated identically to an absent one.
	ErrTemplateNotFound = errors.New("no enrolled template was found")

	// ErrTemplateVersionConflict is returned when an optimistic-locking
	// check fails: the template version supplied by the caller does not
	// match the current version stored in the database, meaning a
	// concurrent enrollment has overwritten the record since it was read.
	ErrTemplateVersionConflict = errors.New("template version conflict occurred")

	// ErrSessionNotFound is returned when an auth-session lookup matches no
	// live row: the session id is unknown or the session has expired.
	ErrSessionNotFound = errors.New("auth session was not found")

	// ErrStoreUnavailable wraps driver-level faults (connection loss,
	// timeouts) so that callers can surface them as retryable instead of
	// treating them as domain failures.
	ErrStoreUnavailable = errors.New("store is unavailable")
)
