// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tracker-config/internal/app"
	"github.com/go-chi/chi/v5"
)

var routedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with an Allow header listing the methods the matched route serves.
// Parameterised and nested routes are matched through [chi.Mux.Match].
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			writeError(w, r, app.MsgNotFound, http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, r, fmt.Sprintf(app.MsgMethodNotAllowed, r.Method), http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range routedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, app.MsgNotFound, http.StatusNotFound)
}
