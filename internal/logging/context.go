package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSeries is the standardized structured logging key for a series folder name.
	FieldSeries = "series"
	// FieldOperation is the standardized structured logging key for the in-flight operation name.
	FieldOperation = "operation"
	// FieldCorrelationID is the standardized structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
)

type contextKey int

const (
	seriesKey contextKey = iota
	operationKey
	correlationIDKey
)

// WithSeries returns a context tagged with a series folder name for logging.
func WithSeries(ctx context.Context, series string) context.Context {
	return context.WithValue(ctx, seriesKey, series)
}

// WithOperation returns a context tagged with an operation name for logging.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey, operation)
}

// WithCorrelationID returns a context tagged with a correlation ID for logging.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if series, ok := ctx.Value(seriesKey).(string); ok && series != "" {
		fields = append(fields, slog.String(FieldSeries, series))
	}
	if operation, ok := ctx.Value(operationKey).(string); ok && operation != "" {
		fields = append(fields, slog.String(FieldOperation, operation))
	}
	if id, ok := ctx.Value(correlationIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldCorrelationID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
