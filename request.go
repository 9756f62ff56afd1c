package btcrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// JSONRPCVersion is the version that appears in the "jsonrpc" field of
	// every request.
	JSONRPCVersion = "2.0"

	// RequestID is the ID used for every request.
	//
	// Responses are never correlated with requests by ID. Each call performs
	// its own HTTP round trip, so the response to a request is always the body
	// of the HTTP response to that request.
	RequestID = "rusttest"
)

// Request encapsulates a JSON-RPC request.
//
// The field order matches the order of the keys in the marshaled JSON object.
type Request struct {
	// Version is the JSON-RPC version. It is always JSONRPCVersion.
	Version string `json:"jsonrpc"`

	// ID is the request ID. It is always RequestID.
	ID string `json:"id"`

	// Method is the name of the RPC method to be invoked.
	Method string `json:"method"`

	// Parameters is the JSON array of positional parameters.
	//
	// It is never omitted. A method that takes no parameters is sent an empty
	// array.
	Parameters json.RawMessage `json:"params"`
}

// NewRequest returns a new request for the given method.
//
// args is the ordered list of positional parameters. A nil or empty slice
// produces an empty JSON array.
//
// It returns an error if any of the arguments can not be marshaled.
func NewRequest(method string, args []any) (Request, error) {
	if args == nil {
		args = []any{}
	}

	params, err := json.Marshal(args)
	if err != nil {
		return Request{}, fmt.Errorf("unable to marshal request parameters: %w", err)
	}

	return Request{
		Version:    JSONRPCVersion,
		ID:         RequestID,
		Method:     method,
		Parameters: params,
	}, nil
}

// Validate checks that the request can be sent to a server.
func (r Request) Validate() error {
	if r.Version != JSONRPCVersion {
		return fmt.Errorf(`request version must be "%s"`, JSONRPCVersion)
	}

	if r.Method == "" {
		return errors.New("method name must not be empty")
	}

	if len(r.Parameters) < 2 || r.Parameters[0] != '[' {
		return errors.New("parameters must be an array")
	}

	return nil
}
