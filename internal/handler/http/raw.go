package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/models"
	"github.com/go-chi/chi/v5"
)

// getRaw answers GET /api/raw/{scope}/{name}?identity= with exactly what the
// store holds for one tier, without defaults or coercion.
func (h *Handler) getRaw(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slot := models.Slot{
		Name:     chi.URLParam(r, "name"),
		Scope:    scope,
		Identity: r.URL.Query().Get("identity"),
	}
	value, err := h.services.ValueService.GetRaw(r.Context(), slot)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, value, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getRaw").Send()
	}
}

// listRaw answers GET /api/raw/{scope}?identity=.
func (h *Handler) listRaw(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	values, err := h.services.ValueService.ListRaw(r.Context(), scope, r.URL.Query().Get("identity"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, values, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listRaw").Send()
	}
}

func scopeParam(r *http.Request) (keys.KeyType, error) {
	scope, err := keys.ParseKeyType(chi.URLParam(r, "scope"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScopeParam, err)
	}
	return scope, nil
}
