package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger is the structured, key/value logging surface every layer writes to.
// Implementations are safe for concurrent use and add the correlation id
// found in ctx. Fields used across tint:
//   - correlation_id: one UUID per CLI invocation
//   - layer: domain, infrastructure or cli
//   - component: theme.engine, cli.mode, cli.preview, ...
//   - mode, dark, backend, count for theme events
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationKey struct{}

// WithCorrelationID returns a child of ctx carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// GetCorrelationID returns the id stored in ctx, or "" when there is none
// (including a nil ctx).
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// GenerateCorrelationID returns a random UUIDv4 string.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
