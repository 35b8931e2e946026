package http

import (
	"errors"
	"net/http"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/store"
	"github.com/Blocci/Art-Connect/internal/utils"
	"github.com/Blocci/Art-Connect/models"
)

// requireAllFactors admits a request only if the token's auth session has
// completed the full factor sequence: password, face, and voice.
//
// Possession of a valid token proves only the password factor; the session
// record is the server-side source of truth for the biometric steps, so a
// token alone can never reach a factor-gated resource. Must be mounted
// after [Handler.auth], which places the session ID in the context.
//
// Rejections:
//   - HTTP 401 if the session is unknown or expired ([store.ErrSessionNotFound]).
//   - HTTP 403 if the session is live but a factor is still missing.
func (h *Handler) requireAllFactors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		sessionID, ok := utils.GetSessionIDFromContext(ctx)
		if !ok {
			log.Error().Msg("factor gate mounted without auth middleware")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		session, err := h.services.AuthService.Session(ctx, sessionID)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				log.Warn().Str("session_id", sessionID).Msg("auth session not found or expired")
				http.Error(w, "session expired", http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("auth session lookup failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !session.Complete(models.AllFactors...) {
			log.Warn().
				Str("session_id", sessionID).
				Any("completed_factors", session.Factors).
				Msg("incomplete factor sequence")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{
				Error: "all authentication factors must be completed",
			}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
