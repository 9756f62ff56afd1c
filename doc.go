// Package btcrpc contains the JSON-RPC types shared by the Bitcoin Core client,
// its transports and its middleware.
//
// See the rpcclient package for the client itself.
package btcrpc
