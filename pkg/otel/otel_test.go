package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestAddSpanUsesInjectedTracer(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "register")
	id := GetTraceID(ctx)
	span.End()

	ended := rec.Ended()
	if assert.Len(t, ended, 1) {
		assert.Equal(t, "register", ended[0].Name())
		assert.Equal(t, ended[0].SpanContext().TraceID().String(), id)
	}
}

func TestGetTraceIDWithoutSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}
