// Package v1handler implements the v1 HTTP API on top of the resolver.
package v1handler

import (
	"errors"
	"io"
	"net/http"

	"terms/pkg/controller"
	"terms/pkg/logger"
	"terms/pkg/loose"
	"terms/pkg/resolver"
	"terms/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// MaxBodyBytes caps the size of request bodies.
const MaxBodyBytes = 1 << 20

// Deps are the services the handlers call into.
type Deps struct {
	Resolver resolver.Resolver
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Resolve handles POST /v1/terms/resolve. The body is {"input": <any JSON>}
// and the response is the encoded resolver.Result.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, err := decodeResolveRequest(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	res, err := h.deps.Resolver.Resolve(ctx, input)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}
	logger.Debug(ctx, "resolved input", zap.Stringer("shape", res.Shape), zap.Int("terms", len(res.Objects())))

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	EncodeResult(e, res)
	controller.WriteJSON(w, http.StatusOK, e.Bytes())
}

func decodeResolveRequest(body io.Reader) (any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	var (
		input any
		found bool
	)
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, serrors.With(serrors.ErrBadRequest, "request body must be a JSON object")
	}
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "input" {
			return d.Skip()
		}
		found = true
		v, err := loose.Decode(d)
		input = v

		return err
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if !found {
		return nil, serrors.With(serrors.ErrBadRequest, `missing "input" field`)
	}

	return input, nil
}
