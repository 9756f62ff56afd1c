package btcrpc

import (
	"context"
	"encoding/json"
)

// Caller performs a single JSON-RPC round trip.
//
// Implementations are provided by the transport layer, and by middleware that
// wraps another Caller.
type Caller interface {
	// Call sends req to the server and returns the body of its response.
	//
	// The body is returned without any interpretation. A non-nil error
	// indicates that the request could not be delivered or that the response
	// could not be read.
	Call(ctx context.Context, req Request) (json.RawMessage, error)
}
