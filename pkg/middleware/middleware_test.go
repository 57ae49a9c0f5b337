package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mcp-dashboard/pkg/log"
)

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var seenCorrelationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenCorrelationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seenCorrelationID)
	assert.Equal(t, seenCorrelationID, rec.Header().Get(CorrelationHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Cors([]string{"http://localhost:3000"})(next)

	tests := []struct {
		name          string
		method        string
		origin        string
		expectedCode  int
		expectedAllow string
	}{
		{
			name:          "Origem liberada - deve retornar os cabeçalhos de CORS",
			method:        http.MethodGet,
			origin:        "http://localhost:3000",
			expectedCode:  http.StatusNoContent,
			expectedAllow: "http://localhost:3000",
		},
		{
			name:         "Origem desconhecida - não deve liberar",
			method:       http.MethodGet,
			origin:       "https://evil.example",
			expectedCode: http.StatusNoContent,
		},
		{
			name:          "Preflight - deve responder 200 sem chamar o handler",
			method:        http.MethodOptions,
			origin:        "http://localhost:3000",
			expectedCode:  http.StatusOK,
			expectedAllow: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/kits", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNoStore(t *testing.T) {
	handler := NoStore()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestSameOrigin(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name         string
		method       string
		origin       string
		referer      string
		expectedCode int
	}{
		{name: "GET de outra origem - liberado", method: http.MethodGet, origin: "http://evil.test", expectedCode: http.StatusNoContent},
		{name: "POST sem Origin nem Referer - liberado", method: http.MethodPost, expectedCode: http.StatusNoContent},
		{name: "POST da própria origem - liberado", method: http.MethodPost, origin: "http://dashboard.test", expectedCode: http.StatusNoContent},
		{name: "POST de origem do CORS - liberado", method: http.MethodPost, origin: "http://localhost:3000", expectedCode: http.StatusNoContent},
		{name: "POST de outra origem - recusado", method: http.MethodPost, origin: "http://evil.test", expectedCode: http.StatusForbidden},
		{name: "POST com Origin null - recusado", method: http.MethodPost, origin: "null", expectedCode: http.StatusForbidden},
		{name: "POST com Referer de outra origem - recusado", method: http.MethodPost, referer: "http://evil.test/form", expectedCode: http.StatusForbidden},
		{name: "POST com Referer da própria origem - liberado", method: http.MethodPost, referer: "http://dashboard.test/", expectedCode: http.StatusNoContent},
	}

	handler := SameOrigin([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://dashboard.test/kits", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
