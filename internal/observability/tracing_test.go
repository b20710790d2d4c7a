package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingLayer(t *testing.T) (*TraceLayer, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewTraceLayer(tp.Tracer("test")), rec
}

func TestTraceLayer_RepositoryMethod(t *testing.T) {
	layer, rec := newRecordingLayer(t)

	_, span := layer.TraceRepositoryMethod(context.Background(), "sqlite", "users", "FindByID")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "repository.users.FindByID", ended[0].Name())

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "sqlite", attrs["db.system"])
	assert.Equal(t, "users", attrs["db.table"])
}

func TestTraceLayer_ServiceSpanParentsRepositorySpan(t *testing.T) {
	layer, rec := newRecordingLayer(t)

	ctx, parent := layer.TraceServiceToRepository(context.Background(), "ReplyService", "ChildReplies")
	_, child := layer.TraceRepositoryMethod(ctx, "sqlite", "replies", "FindByQuestionID")
	child.End()
	parent.End()

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestRecordErrorInContext(t *testing.T) {
	layer, rec := newRecordingLayer(t)

	ctx, span := layer.TraceCacheOperation(context.Background(), "get", "user:1")
	RecordErrorInContext(ctx, errors.New("connection refused"))
	RecordErrorInContext(ctx, nil)
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Events(), 1)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "qaforum-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	s, _ := NewSpan(context.Background(), "noop")
	s.SetError(errors.New("ignored"))
	s.End()
}
