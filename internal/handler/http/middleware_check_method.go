// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maskUnknownMethods replaces chi's default 405 Method Not Allowed response
// with a 404. An authentication endpoint should not confirm its own
// existence to a caller probing it with the wrong verb.
//
// Registered via router.MethodNotAllowed after all routes are mounted. The
// check walks the router's route table for a pattern equal to the raw
// request path; parameterised segments are not expanded, which is enough
// here because every route is a literal path.
func maskUnknownMethods(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, supported := route.Handlers[r.Method]; supported {
				// Method is actually registered; let the router dispatch it.
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
