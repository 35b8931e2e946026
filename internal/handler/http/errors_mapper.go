package http

import (
	"errors"
	"net/http"

	"github.com/Blocci/Art-Connect/internal/biometric"
	"github.com/Blocci/Art-Connect/internal/extractor"
	"github.com/Blocci/Art-Connect/internal/service"
	"github.com/Blocci/Art-Connect/internal/store"
	"github.com/Blocci/Art-Connect/internal/utils"
	"github.com/Blocci/Art-Connect/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	biometric.ErrInvalidDescriptor: http.StatusBadRequest,

	extractor.ErrExtractionFailed: http.StatusBadGateway,

	store.ErrUsernameAlreadyExists:   http.StatusConflict,
	store.ErrNoUserWasFound:          http.StatusNotFound,
	store.ErrTemplateNotFound:        http.StatusNotFound,
	store.ErrTemplateVersionConflict: http.StatusConflict,
	store.ErrSessionNotFound:         http.StatusUnauthorized,
	store.ErrStoreUnavailable:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes the uniform JSON error
// body. Internal faults are masked with the generic status text so that
// storage details never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
