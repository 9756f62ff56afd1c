package otelbtcrpc

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/dogmatiq/btcrpc"
	"github.com/dogmatiq/btcrpc/internal/version"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.opentelemetry.io/otel/trace"
)

// Tracing is an implementation of btcrpc.Caller that provides OpenTelemetry
// tracing for each JSON-RPC call.
//
// It adheres to the OpenTelemetry RPC semantic conventions as specified in
// https://github.com/open-telemetry/opentelemetry-specification/blob/main/specification/trace/semantic_conventions/rpc.md.
type Tracing struct {
	// Next is the next caller in the middleware stack.
	Next btcrpc.Caller

	// TracerProvider is the OpenTelemetry TracerProvider to use for creating
	// spans.
	TracerProvider trace.TracerProvider

	// ServiceName is an application specific service name to use in the span
	// name and attributes.
	//
	// It may be empty, in which case it is omitted from the span.
	ServiceName string

	once           sync.Once
	tracer         trace.Tracer
	spanNamePrefix string
	attributes     []attribute.KeyValue
}

var _ btcrpc.Caller = (*Tracing)(nil)

// Call sends req to the next caller within a client span.
//
// The span has an error status if the request can not be delivered or the
// server responds with a JSON-RPC error object.
func (t *Tracing) Call(ctx context.Context, req btcrpc.Request) (json.RawMessage, error) {
	t.init()

	ctx, span := t.tracer.Start(
		ctx,
		t.spanNamePrefix+sanitizeMethodName(req.Method),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()

	span.SetAttributes(t.attributes...)
	span.SetAttributes(requestAttributes(req)...)
	span.SetAttributes(semconv.RPCJsonrpcRequestIDKey.String(req.ID))

	res, err := t.Next.Call(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		return nil, err
	}

	if e, ok := responseError(res); ok {
		span.SetAttributes(errorResponseAttributes(e)...)
		span.SetStatus(codes.Error, e.Err().Message())
		return res, nil
	}

	span.SetStatus(codes.Ok, "")
	return res, nil
}

// init initializes the tracer if it has not already been initialized.
func (t *Tracing) init() {
	t.once.Do(func() {
		t.tracer = t.TracerProvider.Tracer(
			"github.com/dogmatiq/btcrpc/middleware/otelbtcrpc",
			trace.WithInstrumentationVersion(version.Version),
		)

		t.attributes = commonAttributes(t.ServiceName)

		if t.ServiceName != "" {
			t.spanNamePrefix = t.ServiceName + "/"
		}
	})
}

// sanitizeMethodName returns an RPC method name suitable for use in part of
// span name.
func sanitizeMethodName(n string) string {
	return strings.ReplaceAll(n, "/", "-")
}
