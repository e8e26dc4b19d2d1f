package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"terms/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/terms/resolve", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS()(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Equal(t, "POST, GET, OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_AllowedOrigins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := controller.WithCORS("https://app.example.com")(next)

	tests := []struct {
		origin      string
		allowOrigin string
		credentials string
	}{
		{origin: "https://app.example.com", allowOrigin: "https://app.example.com", credentials: "true"},
		{origin: "https://evil.example.com"},
		{},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/v1/terms/resolve", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusTeapot, res.StatusCode, tt.origin)
		require.Equal(t, tt.allowOrigin, res.Header.Get("Access-Control-Allow-Origin"), tt.origin)
		require.Equal(t, tt.credentials, res.Header.Get("Access-Control-Allow-Credentials"), tt.origin)
	}
}
