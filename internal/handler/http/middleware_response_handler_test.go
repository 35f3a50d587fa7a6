package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_WriteHeader_FirstWins(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "single 204", statusCodes: []int{http.StatusNoContent}, expectedStatus: http.StatusNoContent},
		{name: "single 422", statusCodes: []int{http.StatusUnprocessableEntity}, expectedStatus: http.StatusUnprocessableEntity},
		{name: "double call", statusCodes: []int{http.StatusNotFound, http.StatusInternalServerError}, expectedStatus: http.StatusNotFound},
		{name: "triple call", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusServiceUnavailable}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		writes       [][]byte
		explicitCode int
		wantStatus   int
		wantSize     int
	}{
		{name: "single write, implicit 200", writes: [][]byte{[]byte("OK")}, wantStatus: http.StatusOK, wantSize: 2},
		{name: "multiple writes accumulate size", writes: [][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}, wantStatus: http.StatusOK, wantSize: 9},
		{name: "explicit 404, then write", writes: [][]byte{[]byte("not found")}, explicitCode: http.StatusNotFound, wantStatus: http.StatusNotFound, wantSize: 9},
		{name: "empty write still sets 200", writes: [][]byte{{}}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, data := range tt.writes {
				_, err := w.Write(data)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_ProxiesHeadersAndUnwraps(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set(traceIDHeader, "abc")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "abc", rr.Header().Get(traceIDHeader))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
