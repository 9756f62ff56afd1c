package otelbtcrpc

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dogmatiq/btcrpc"
	"github.com/dogmatiq/btcrpc/internal/version"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics is an implementation of btcrpc.Caller that provides OpenTelemetry
// metrics for each JSON-RPC call.
type Metrics struct {
	// Next is the next caller in the middleware stack.
	Next btcrpc.Caller

	// MeterProvider is the OpenTelemetry MeterProvider used to create meters.
	MeterProvider metric.MeterProvider

	// ServiceName is an application specific service name to use in the
	// metric attributes.
	//
	// It may be empty, in which case it is omitted.
	ServiceName string

	once       sync.Once
	calls      metric.Int64Counter
	errors     metric.Int64Counter
	duration   metric.Int64Histogram
	attributes []attribute.KeyValue
}

var _ btcrpc.Caller = (*Metrics)(nil)

// Call sends req to the next caller and records its outcome.
//
// Transport failures and JSON-RPC error responses are counted as errors.
// Error responses are recorded with the error code and message attributes.
func (m *Metrics) Call(ctx context.Context, req btcrpc.Request) (json.RawMessage, error) {
	m.init()

	attrs := requestAttributes(req)
	attrs = append(attrs, m.attributes...)
	attrOption := metric.WithAttributes(attrs...)

	m.calls.Add(ctx, 1, attrOption)

	start := time.Now()
	res, err := m.Next.Call(ctx, req)
	elapsed := time.Since(start)

	m.duration.Record(ctx, durationToMillis(elapsed), attrOption)

	if err != nil {
		m.errors.Add(ctx, 1, attrOption)
	} else if e, ok := responseError(res); ok {
		attrs = append(attrs, errorResponseAttributes(e)...)
		m.errors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	return res, err
}

// init initializes the meters if they have not already been initialized.
func (m *Metrics) init() {
	m.once.Do(func() {
		meter := m.MeterProvider.Meter(
			"github.com/dogmatiq/btcrpc/middleware/otelbtcrpc",
			metric.WithInstrumentationVersion(version.Version),
		)

		var err error

		m.calls, err = meter.Int64Counter(
			"rpc.client.calls",
			metric.WithDescription("The number of JSON-RPC calls made."),
			metric.WithUnit("1"),
		)
		if err != nil {
			panic(err)
		}

		m.errors, err = meter.Int64Counter(
			"rpc.client.errors",
			metric.WithDescription("The number of JSON-RPC calls that fail or result in an error."),
			metric.WithUnit("1"),
		)
		if err != nil {
			panic(err)
		}

		m.duration, err = meter.Int64Histogram(
			"rpc.client.duration",
			metric.WithDescription("The amount of time it takes to perform a JSON-RPC round trip."),
			metric.WithUnit("ms"),
		)
		if err != nil {
			panic(err)
		}

		m.attributes = commonAttributes(m.ServiceName)
	})
}

// durationToMillis converts a duration to milliseconds.
func durationToMillis(d time.Duration) int64 {
	return int64(d / time.Millisecond)
}
