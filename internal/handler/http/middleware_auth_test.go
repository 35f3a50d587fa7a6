package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/service"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/values/web.port", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "scheme is case-insensitive", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "surrounding spaces", header: "  Bearer   tok  ", wantToken: "tok"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "only spaces", header: "   ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme rejected", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts rejected", header: "Bearer token extra-part", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authSvc        *mockAuthService
		authHeader     string
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "writes disabled → 403",
			authSvc:        &mockAuthService{enabled: false, validToken: "good"},
			authHeader:     "Bearer good",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no header → 401",
			authSvc:        &mockAuthService{enabled: true, validToken: "good"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header → 401",
			authSvc:        &mockAuthService{enabled: true, validToken: "good"},
			authHeader:     "Token good",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong token → 401",
			authSvc:        &mockAuthService{enabled: true, validToken: "good"},
			authHeader:     "Bearer bad",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unexpected parse failure → 500",
			authSvc:        &mockAuthService{enabled: true, parseErr: errors.New("boom")},
			authHeader:     "Bearer good",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "valid token → next",
			authSvc:        &mockAuthService{enabled: true, validToken: "good", operator: "ops"},
			authHeader:     "Bearer good",
			expectedStatus: http.StatusNoContent,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			})

			rr := executeAuth(newHandlerWithAuthService(tt.authSvc), tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, called)
			if !tt.nextCalled {
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestAuth_DisabledMessage(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{enabled: false})

	rr := executeAuth(h, "Bearer anything", http.NotFoundHandler())

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), service.ErrWritesDisabled.Error())
}

func TestAuth_OperatorInContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{enabled: true, validToken: "tok", operator: "alice"})

	var operator string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operator, ok = utils.GetOperatorFromContext(r.Context())
	})

	executeAuth(h, "Bearer tok", next)

	require.True(t, ok)
	assert.Equal(t, "alice", operator)
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{enabled: true, validToken: "tok", operator: "alice"})

	req := httptest.NewRequest(http.MethodDelete, "/api/values/web.port", nil)
	req.Header.Set("Authorization", "Bearer tok")
	originalCtx := req.Context()

	h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
	_, ok := utils.GetOperatorFromContext(req.Context())
	assert.False(t, ok)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{enabled: true, validToken: "tok", operator: "alice"})
	middleware := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var wg sync.WaitGroup
	codes := make(chan int, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPut, "/api/values/web.port", nil)
			if i%2 == 0 {
				req.Header.Set("Authorization", "Bearer tok")
			}
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			codes <- rr.Code
		}(i)
	}
	wg.Wait()
	close(codes)

	counts := map[int]int{}
	for c := range codes {
		counts[c]++
	}
	assert.Equal(t, 20, counts[http.StatusNoContent])
	assert.Equal(t, 20, counts[http.StatusUnauthorized])
}
