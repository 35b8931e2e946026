// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFactorMux builds a minimal router with the API's method split: POSTs
// for submissions, GETs for reads.
func newFactorMux() *chi.Mux {
	mux := chi.NewRouter()
	mux.Post("/api/register", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("registered"))
	})
	mux.Post("/api/verify-face", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Get("/api/get-voice", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.MethodNotAllowed(maskUnknownMethods(mux))
	return mux
}

func TestMaskUnknownMethods_WrongVerbLooksLikeUnknownPath(t *testing.T) {
	mux := newFactorMux()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/register"},
		{http.MethodPut, "/api/register"},
		{http.MethodDelete, "/api/verify-face"},
		{http.MethodPost, "/api/get-voice"},
		{http.MethodHead, "/api/verify-face"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestMaskUnknownMethods_SupportedVerbStillDispatches(t *testing.T) {
	mux := newFactorMux()

	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "registered", rr.Body.String())
}

// Calling the handler directly with a supported verb exercises the
// delegate-back-to-router branch.
func TestMaskUnknownMethods_DirectCallDelegates(t *testing.T) {
	mux := newFactorMux()
	handler := maskUnknownMethods(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/get-voice", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMaskUnknownMethods_UnknownPathStays404(t *testing.T) {
	mux := newFactorMux()

	req := httptest.NewRequest(http.MethodPost, "/api/no-such-route", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
