package rpcclient

import (
	"net/http"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option is an option that changes the behavior of a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient     *http.Client
	logger         *zap.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
}

// WithHTTPClient is an Option that sets the HTTP client used to make requests.
//
// By default a new HTTP client is created for each Client. Either way, the same
// HTTP client is used for every call made by the Client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithZapLogger is an Option that configures the client to use a
// btcrpc.ZapCallLogger for logging calls.
func WithZapLogger(logger *zap.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithTracerProvider is an Option that records an OpenTelemetry span for
// each call.
func WithTracerProvider(p trace.TracerProvider) Option {
	return func(o *clientOptions) {
		o.tracerProvider = p
	}
}

// WithMeterProvider is an Option that records OpenTelemetry metrics for each
// call.
func WithMeterProvider(p metric.MeterProvider) Option {
	return func(o *clientOptions) {
		o.meterProvider = p
	}
}

// WithServiceName is an Option that sets the service name used in OpenTelemetry
// span names and attributes.
func WithServiceName(n string) Option {
	return func(o *clientOptions) {
		o.serviceName = n
	}
}
