package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/models"
	"github.com/go-chi/chi/v5"
)

// maxWriteBody bounds PUT bodies; values themselves are validated later.
const maxWriteBody = 128 << 10

// resolveValue answers GET /api/values/{name}?protocol=&device= with the
// effective value and the tiers probed for it.
func (h *Handler) resolveValue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	target := keys.GlobalTarget().
		WithProtocol(query.Get("protocol")).
		WithDevice(query.Get("device"))

	value, err := h.services.ValueService.Resolve(r.Context(), chi.URLParam(r, "name"), target)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, value, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.resolveValue").Send()
	}
}

// setValue answers PUT /api/values/{name}?scope=&identity=.
func (h *Handler) setValue(w http.ResponseWriter, r *http.Request) {
	slot, err := slotFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var body models.WriteRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxWriteBody))
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(&body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.setValue").Msg("error decoding body")
		writeError(w, r, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	if err = h.services.ValueService.Set(r.Context(), models.Assignment{Slot: slot, Value: string(body.Value)}); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// unsetValue answers DELETE /api/values/{name}?scope=&identity=.
func (h *Handler) unsetValue(w http.ResponseWriter, r *http.Request) {
	slot, err := slotFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err = h.services.ValueService.Unset(r.Context(), slot); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// slotFromRequest reads the key name from the path and the tier from the
// query. An omitted scope means the global tier.
func slotFromRequest(r *http.Request) (models.Slot, error) {
	query := r.URL.Query()

	scope := keys.Global
	if s := query.Get("scope"); s != "" {
		parsed, err := keys.ParseKeyType(s)
		if err != nil {
			return models.Slot{}, fmt.Errorf("%w: %w", ErrInvalidScopeParam, err)
		}
		scope = parsed
	}

	return models.Slot{
		Name:     chi.URLParam(r, "name"),
		Scope:    scope,
		Identity: query.Get("identity"),
	}, nil
}
