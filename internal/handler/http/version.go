package http

import (
	"net/http"

	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, serverVersion, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Send()
	}
}
