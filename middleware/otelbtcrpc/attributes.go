package otelbtcrpc

import (
	"encoding/json"

	"github.com/dogmatiq/btcrpc"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
)

// commonAttributes returns the OpenTelemetry attributes that are recorded on
// every span and meter.
func commonAttributes(serviceName string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.RPCSystemKey.String("bitcoin-core"),
	}

	if serviceName != "" {
		attrs = append(
			attrs,
			semconv.RPCServiceKey.String(serviceName),
		)
	}

	return attrs
}

// requestAttributes returns the OpenTelemetry attributes that describe req.
func requestAttributes(req btcrpc.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.RPCMethodKey.String(req.Method),
		semconv.RPCJsonrpcVersionKey.String(req.Version),
	}
}

// errorResponseAttributes returns the OpenTelemetry attributes that describe
// a JSON-RPC error returned by the server.
func errorResponseAttributes(e btcrpc.ErrorInfo) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.RPCJsonrpcErrorCodeKey.Int(int(e.Code)),
		semconv.RPCJsonrpcErrorMessageKey.String(e.Message),
	}
}

// responseError returns the JSON-RPC error object in res.
//
// ok is false if res is not a JSON object with a non-null "error" member.
func responseError(res json.RawMessage) (e btcrpc.ErrorInfo, ok bool) {
	var env struct {
		Error *btcrpc.ErrorInfo `json:"error"`
	}

	if err := json.Unmarshal(res, &env); err != nil || env.Error == nil {
		return btcrpc.ErrorInfo{}, false
	}

	return *env.Error, true
}
