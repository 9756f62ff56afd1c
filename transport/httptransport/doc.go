// Package httptransport provides an HTTP-based JSON-RPC transport for talking
// to Bitcoin Core.
//
// Requests are sent by making an HTTP POST request. The implementation
// integrates with Go's native HTTP package.
package httptransport
