package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tracker-config/internal/app"
	"github.com/MKhiriev/go-tracker-config/internal/adapter"
	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/service"
	"github.com/MKhiriev/go-tracker-config/internal/store"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/internal/validators"
	"github.com/MKhiriev/go-tracker-config/models"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// gets the status of the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{keys.ErrUnknownKey, http.StatusNotFound},
	{keys.ErrTypeMismatch, http.StatusBadRequest},
	{keys.ErrIllegalScope, http.StatusUnprocessableEntity},
	{keys.ErrInvalidScope, http.StatusBadRequest},
	{keys.ErrMissingIdentity, http.StatusBadRequest},
	{keys.ErrReadOnly, http.StatusMethodNotAllowed},

	{validators.ErrInvalidName, http.StatusBadRequest},
	{validators.ErrInvalidScope, http.StatusBadRequest},
	{validators.ErrInvalidIdentity, http.StatusBadRequest},
	{validators.ErrValueTooLong, http.StatusBadRequest},
	{validators.ErrInvalidValue, http.StatusBadRequest},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrWritesDisabled, http.StatusForbidden},
	{service.ErrListingUnsupported, http.StatusNotImplemented},

	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},
	{store.ErrNoWritableLayer, http.StatusMethodNotAllowed},

	{adapter.ErrServiceUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err with the status mapped from it. Internal errors
// are logged and hidden from the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("internal error")
		message = app.MsgInternalServerError
	}
	writeError(w, r, message, status)
}

func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	body := models.ErrorResponse{
		Error:   message,
		TraceID: utils.GetTraceIDFromContext(r.Context()),
	}
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
