package controller

import (
	"context"
	"errors"
	"net/http"

	"terms/pkg/logger"
	"terms/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// StatusFor maps the kind of err to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, serrors.ErrInvalidInput), errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as {"error": {"code": ..., "message": ...}}. Details
// of internal errors are logged and never sent to the client.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusFor(err)
	code := serrors.ErrInternal.Error()
	message := http.StatusText(status)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		if k := serrors.KindOf(err); k != nil {
			code = k.Error()
		}
		message = err.Error()
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("code", func(e *jx.Encoder) { e.Str(code) })
				e.Field("message", func(e *jx.Encoder) { e.Str(message) })
				if id := RequestID(ctx); id != "" {
					e.Field("requestId", func(e *jx.Encoder) { e.Str(id) })
				}
			})
		})
	})

	WriteJSON(w, status, e.Bytes())
}

// WriteJSON writes body with a JSON content type.
func WriteJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
