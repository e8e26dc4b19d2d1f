package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"terms/pkg/logger"
	"terms/pkg/serrors"

	"go.uber.org/zap"
)

// Outcomes reported to the Recorder.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

func (r *resolver) Resolve(ctx context.Context, input any) (Result, error) {
	start := time.Now()
	in := Classify(input)

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "resolving term input",
			zap.String("variant", in.Variant()),
			zap.String("type", fmt.Sprintf("%T", input)))
	}

	res, err := in.resolve(ctx, r)
	if r.metrics != nil {
		r.metrics.ObserveResolve(ctx, in.Variant(), outcome(res, err), time.Since(start))
	}
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

func outcome(res Result, err error) string {
	switch {
	case errors.Is(err, serrors.ErrInvalidInput):
		return OutcomeInvalid
	case err != nil:
		return OutcomeError
	case res.Found():
		return OutcomeFound
	default:
		return OutcomeNotFound
	}
}
