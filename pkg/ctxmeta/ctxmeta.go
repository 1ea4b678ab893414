// Пакет ctxmeta - метаданные запроса, которые едут через context.Context
// (request_id, trace/span активного спана). От него зависят HTTP-слой и логгер,
// но не друг от друга.
package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID кладет request_id в контекст (пустой id не меняет контекст).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// TraceIDFromContext - trace id активного спана; без спана ("", false).
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.TraceID().String(), true
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}

// Fields - пары ключ/значение для структурного логгера; отсутствующие значения пропускаются.
func Fields(ctx context.Context) []any {
	var out []any
	if v, ok := RequestIDFromContext(ctx); ok {
		out = append(out, "request_id", v)
	}
	if v, ok := TraceIDFromContext(ctx); ok {
		out = append(out, "trace_id", v)
	}
	if v, ok := SpanIDFromContext(ctx); ok {
		out = append(out, "span_id", v)
	}
	return out
}
