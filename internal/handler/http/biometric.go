package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/Blocci/Art-Connect/internal/logger"
	"github.com/Blocci/Art-Connect/internal/utils"
	"github.com/Blocci/Art-Connect/models"
)

// maxAudioUploadBytes bounds a raw voice recording upload (multipart form).
const maxAudioUploadBytes = 10 << 20

func (h *Handler) enrollFace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, sessionID, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	descriptor, ok := h.descriptorFromJSON(w, r)
	if !ok {
		return
	}

	if err := h.services.BiometricService.EnrollFace(ctx, userID, sessionID, descriptor); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("face enrollment failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AckResponse{Message: "face descriptor saved"}, http.StatusOK)
}

func (h *Handler) verifyFace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, sessionID, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	descriptor, ok := h.descriptorFromJSON(w, r)
	if !ok {
		return
	}

	distance, match, err := h.services.BiometricService.VerifyFace(ctx, userID, sessionID, descriptor)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("face verification failed")
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if !match {
		status = http.StatusUnauthorized
	}
	_, _ = utils.WriteJSON(w, models.MatchResponse{Match: match, Distance: &distance}, status)
}

func (h *Handler) getFace(w http.ResponseWriter, r *http.Request) {
	h.getTemplate(w, r, h.services.BiometricService.GetFaceTemplate)
}

func (h *Handler) enrollVoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, sessionID, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	descriptor, ok := h.voiceDescriptorFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.BiometricService.EnrollVoice(ctx, userID, sessionID, descriptor); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("voice enrollment failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AckResponse{Message: "voice descriptor saved"}, http.StatusOK)
}

func (h *Handler) verifyVoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, sessionID, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	descriptor, ok := h.voiceDescriptorFromRequest(w, r)
	if !ok {
		return
	}

	similarity, match, err := h.services.BiometricService.VerifyVoice(ctx, userID, sessionID, descriptor)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("voice verification failed")
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if !match {
		status = http.StatusUnauthorized
	}
	_, _ = utils.WriteJSON(w, models.MatchResponse{Match: match, Similarity: &similarity}, status)
}

func (h *Handler) getVoice(w http.ResponseWriter, r *http.Request) {
	h.getTemplate(w, r, h.services.BiometricService.GetVoiceTemplate)
}

// protected is the canonical factor-gated resource: the surrounding
// middleware admits only sessions with password, face, and voice completed.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	_, _ = utils.WriteJSON(w, models.AckResponse{
		Message: fmt.Sprintf("all factors verified for user %d", userID),
	}, http.StatusOK)
}

// getTemplate is the shared read path for both modalities.
func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, userID int64) (models.Descriptor, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := identityFromContext(w, r)
	if !ok {
		return
	}

	descriptor, err := fetch(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("template retrieval failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DescriptorResponse{Descriptor: descriptor}, http.StatusOK)
}

// descriptorFromJSON decodes a DescriptorRequest body. The second return
// value reports whether processing may continue; on false a response has
// already been written.
func (h *Handler) descriptorFromJSON(w http.ResponseWriter, r *http.Request) (models.Descriptor, bool) {
	log := logger.FromRequest(r)

	var req models.DescriptorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return nil, false
	}

	return req.Descriptor, true
}

// voiceDescriptorFromRequest accepts either a JSON descriptor body or a
// multipart form carrying a raw recording under the "audio" field. Raw audio
// is converted through the external embedding service before use.
func (h *Handler) voiceDescriptorFromRequest(w http.ResponseWriter, r *http.Request) (models.Descriptor, bool) {
	log := logger.FromRequest(r)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return h.descriptorFromJSON(w, r)
	}

	if err := r.ParseMultipartForm(maxAudioUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return nil, false
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		log.Err(err).Msg("missing audio file in multipart form")
		http.Error(w, "missing audio file", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioUploadBytes))
	if err != nil {
		log.Err(err).Msg("reading audio upload failed")
		http.Error(w, "reading audio upload failed", http.StatusBadRequest)
		return nil, false
	}

	descriptor, err := h.services.BiometricService.DescriptorFromAudio(r.Context(), audio, header.Filename)
	if err != nil {
		log.Err(err).Msg("voice descriptor extraction failed")
		writeError(w, err)
		return nil, false
	}

	return descriptor, true
}

// identityFromContext pulls the authenticated user and session IDs placed in
// the context by the auth middleware. A miss means the route was wired
// without the middleware, which is a server bug, not a client error.
func identityFromContext(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, "", false
	}

	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, "", false
	}

	return userID, sessionID, true
}
