package http

import (
	"net/http"

	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/go-chi/chi/v5"
)

// listKeys serves the reference of every declared key and suffix.
func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	entries := h.services.KeyService.ListKeys(r.Context())

	if _, err := utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listKeys").Send()
	}
}

// getKey serves one declaration. A suffix instantiation such as
// "osmand.port" is answered with its suffix.
func (h *Handler) getKey(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.KeyService.GetKey(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, entry, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getKey").Send()
	}
}
