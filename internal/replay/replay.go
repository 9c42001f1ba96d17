// Package replay folds a stream of actions through a reducer.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/reducer/internal/reducer"
)

const tracerName = "github.com/louisbranch/reducer/internal/replay"

var (
	// ErrDecoderRequired indicates a missing action decoder.
	ErrDecoderRequired = errors.New("action decoder is required")
	// ErrUnhandledAction indicates an action type without a handler in strict
	// mode.
	ErrUnhandledAction = errors.New("unhandled action type")
)

// Options configures replay behavior.
type Options struct {
	// Strict fails the replay on the first action type without a handler
	// instead of skipping it.
	Strict bool
}

// Result captures replay outcomes.
//
// Applied counts actions whose type has a handler, whether or not the handler
// changed the state; a typed handler whose payload fails to decode still
// counts as applied. Skipped counts actions whose type has no handler.
type Result[S any] struct {
	State   S
	Applied int
	Skipped int
}

// Replay reduces every action from dec into state, in order.
//
// Actions whose type has no handler leave the state unchanged and are
// counted as skipped. On error the result holds the state reached so far.
func Replay[S any](ctx context.Context, r reducer.Reducer[S], state S, dec Decoder, options Options) (result Result[S], err error) {
	result.State = state
	if dec == nil {
		return result, ErrDecoderRequired
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "replay.Replay",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Bool("replay.strict", options.Strict)),
	)
	defer func() {
		span.SetAttributes(
			attribute.Int("replay.applied", result.Applied),
			attribute.Int("replay.skipped", result.Skipped),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	handled := make(map[reducer.Type]struct{})
	for _, t := range r.HandledTypes() {
		handled[t] = struct{}{}
	}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		action, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return result, err
		}
		if _, ok := handled[action.Type]; !ok {
			if options.Strict {
				return result, fmt.Errorf("%w: %s", ErrUnhandledAction, action.Type)
			}
			result.Skipped++
			continue
		}
		result.State = r.Reduce(result.State, action)
		result.Applied++
	}
}
