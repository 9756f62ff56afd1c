// Package otelbtcrpc provides OpenTelemetry tracing and metrics for JSON-RPC
// calls made to a Bitcoin Core node.
//
// Tracing and Metrics both wrap a btcrpc.Caller, typically the HTTP transport.
package otelbtcrpc
