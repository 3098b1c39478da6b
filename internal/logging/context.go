package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type traceIDKey struct{}

// FieldTraceID is the log field carrying the per-run trace id.
const FieldTraceID = "trace_id"

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace id in ctx or a fresh ULID.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.Make().String()
}

// FromContext returns the logger attached to ctx.
// Without one, zerolog's disabled logger is returned, so calls are safe.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return zerolog.Ctx(ctx)
}

// WithTraceLogger attaches l to ctx with the ctx trace id as a field.
func WithTraceLogger(ctx context.Context, l zerolog.Logger) context.Context {
	if id := TraceIDFromContext(ctx); id != "" {
		l = l.With().Str(FieldTraceID, id).Logger()
	}
	return l.WithContext(ctx)
}
