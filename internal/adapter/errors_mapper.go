package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Blocci/Art-Connect/models"
)

// mapHTTPError converts a non-success HTTP response into one of the package
// sentinel errors, preserving the server's error message when the body is a
// models.ErrorResponse.
func mapHTTPError(statusCode int, body []byte) error {
	var sentinel error
	switch statusCode {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	default:
		if statusCode >= http.StatusInternalServerError {
			sentinel = ErrInternalServerError
		} else {
			sentinel = ErrUnexpectedStatus
		}
	}

	if msg := serverMessage(body); msg != "" {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("%w: status %d", sentinel, statusCode)
}

func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return resp.Error
}
