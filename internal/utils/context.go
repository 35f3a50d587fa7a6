// Package utils holds small helpers shared by the transport layers: context
// keys, JSON responses, the resty client wrapper, JWT handling and trace id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey holds the subject of the verified write token.
var OperatorCtxKey = contextKey("operator")

// TraceIDCtxKey holds the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetOperatorFromContext returns the operator stored by the auth middleware.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}

// GetTraceIDFromContext returns the trace id stored by the trace middleware.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
