package adapter

import "errors"

var (
	// ErrBadRequest maps HTTP 400: malformed body or invalid descriptor.
	ErrBadRequest = errors.New("invalid request data")

	// ErrUnauthorized maps HTTP 401: bad credentials, expired token, or an
	// expired authentication session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps HTTP 403: the session has not completed all
	// required authentication factors.
	ErrForbidden = errors.New("authentication factors incomplete")

	// ErrNotFound maps HTTP 404: no such user or no enrolled template.
	ErrNotFound = errors.New("not found")

	// ErrConflict maps HTTP 409: username taken or template version
	// conflict.
	ErrConflict = errors.New("conflict")

	// ErrBadGateway maps HTTP 502: the server's descriptor extraction
	// backend failed.
	ErrBadGateway = errors.New("extraction service unavailable")

	// ErrInternalServerError maps HTTP 5xx responses other than 502.
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedStatus covers any status the mapper does not recognise.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrNoToken is returned by authenticated calls made before a token has
	// been obtained via Register or Login.
	ErrNoToken = errors.New("no authentication token: register or login first")
)
