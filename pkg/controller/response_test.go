package controller_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"terms/pkg/controller"
	"terms/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, controller.StatusFor(serrors.With(serrors.ErrInvalidInput, "bad")))
	require.Equal(t, http.StatusBadRequest, controller.StatusFor(serrors.KindOnly(serrors.ErrBadRequest)))
	require.Equal(t, http.StatusUnauthorized, controller.StatusFor(serrors.ErrUnauthorized))
	require.Equal(t, http.StatusNotFound, controller.StatusFor(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, http.StatusInternalServerError, controller.StatusFor(errors.New("boom")))
}

func TestWriteError(t *testing.T) {
	ctx := context.WithValue(context.Background(), controller.RequestIDKey, "req-1")

	rec := httptest.NewRecorder()
	controller.WriteError(ctx, rec, serrors.With(serrors.ErrInvalidInput, "expected a term"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t,
		`{"error":{"code":"INVALID_INPUT","message":"expected a term","requestId":"req-1"}}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	controller.WriteError(context.Background(), rec, errors.New("db password is hunter2"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t,
		`{"error":{"code":"INTERNAL","message":"Internal Server Error"}}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	controller.WriteError(context.Background(), rec, serrors.ErrUnauthorized)
	require.JSONEq(t,
		`{"error":{"code":"UNAUTHORIZED","message":"UNAUTHORIZED"}}`,
		rec.Body.String())
}
