package otel_test

import (
	"context"
	"errors"
	"testing"
	"todolist/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	ot := otel.NewWithProvider(provider)

	_, scope := ot.NewScope(context.Background(), "service", "service.Update")
	scope.SetAttributes(map[string]any{
		"todo.id":     "abc",
		"tasks.count": 2,
		"redirect":    true,
	})
	scope.AddEvent("reconciled")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.Update", span.Name())
	assert.Equal(t, "service", span.InstrumentationScope().Name)
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "boom", span.Status().Description)
	assert.Len(t, span.Attributes(), 3)

	events := []string{}
	for _, event := range span.Events() {
		events = append(events, event.Name)
	}

	assert.Contains(t, events, "reconciled")
	assert.Contains(t, events, "exception")

	require.NoError(t, ot.Shutdown(context.Background()))
}
