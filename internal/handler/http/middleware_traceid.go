package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.newTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx := context.WithValue(l.WithContext(r.Context()), utils.TraceIDCtxKey, traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) newTraceID() string {
	if h.traceIDs == nil {
		return utils.NewUUIDGenerator().Generate()
	}
	return h.traceIDs.Generate()
}
