// Package rpcclient is a minimal client for the Bitcoin Core JSON-RPC API.
//
// Client.Call is the generic call primitive; it reports transport and decoding
// failures as a *btcrpc.TransportError or *btcrpc.DecodeError respectively.
// The convenience methods built on it, such as GetBlockCount(), are intended
// for best-effort callers and report only whether a result was obtained.
package rpcclient
