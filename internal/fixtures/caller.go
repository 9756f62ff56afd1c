package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dogmatiq/btcrpc"
)

// CallerStub is a test implementation of the btcrpc.Caller interface.
type CallerStub struct {
	CallFunc func(context.Context, btcrpc.Request) (json.RawMessage, error)
}

// Call sends req to the server and returns the body of its response.
func (s *CallerStub) Call(ctx context.Context, req btcrpc.Request) (json.RawMessage, error) {
	if s.CallFunc != nil {
		return s.CallFunc(ctx, req)
	}

	return nil, nil
}

// RoundTripperStub is a test implementation of the http.RoundTripper
// interface.
type RoundTripperStub struct {
	RoundTripFunc func(*http.Request) (*http.Response, error)
}

// RoundTrip executes a single HTTP transaction.
func (s *RoundTripperStub) RoundTrip(req *http.Request) (*http.Response, error) {
	if s.RoundTripFunc != nil {
		return s.RoundTripFunc(req)
	}

	return nil, errors.New("<not implemented>")
}
