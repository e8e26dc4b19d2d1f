package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"terms/pkg/controller"
	"terms/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remoteAddr: "not-an-addr", want: "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("done"))
	})
	handler := controller.WithLogger(next)

	req := httptest.NewRequest(http.MethodPost, "/v1/terms/resolve", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res.Header.Get("X-Request-Id"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "Access log", entry.Message)
	fields := entry.ContextMap()
	require.Equal(t, "abc-123", fields["RequestID"])
	require.Equal(t, int64(http.StatusCreated), fields["status_code"])
	require.Equal(t, int64(4), fields["bytes"])
	require.Equal(t, http.MethodPost, fields["method"])
}

func TestWithLogger_GeneratesRequestIDAndWarnsOnServerError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	require.NotEmpty(t, rec.Result().Header.Get("X-Request-Id"))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}
