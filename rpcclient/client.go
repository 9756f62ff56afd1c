package rpcclient

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/dogmatiq/btcrpc"
	"github.com/dogmatiq/btcrpc/middleware/otelbtcrpc"
	"github.com/dogmatiq/btcrpc/transport/httptransport"
	"go.uber.org/zap"
)

// Client is a JSON-RPC client for the Bitcoin Core daemon or compatible APIs.
//
// It is safe for concurrent use. Its configuration can not be changed once it
// has been constructed.
type Client struct {
	caller btcrpc.Caller
	logger btcrpc.CallLogger
}

// New returns a new client that sends requests to the given URL.
//
// url is the complete URL of the RPC endpoint, such as
// "http://127.0.0.1:8332". No I/O is performed until the first call.
func New(url string, auth btcrpc.Auth, options ...Option) *Client {
	var opts clientOptions
	for _, fn := range options {
		fn(&opts)
	}

	hc := opts.httpClient
	if hc == nil {
		hc = &http.Client{}
	}

	var caller btcrpc.Caller = &httptransport.Client{
		HTTPClient: hc,
		URL:        url,
		Auth:       auth,
	}

	if opts.meterProvider != nil {
		caller = &otelbtcrpc.Metrics{
			Next:          caller,
			MeterProvider: opts.meterProvider,
			ServiceName:   opts.serviceName,
		}
	}

	if opts.tracerProvider != nil {
		caller = &otelbtcrpc.Tracing{
			Next:           caller,
			TracerProvider: opts.tracerProvider,
			ServiceName:    opts.serviceName,
		}
	}

	logger := opts.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		caller: caller,
		logger: btcrpc.ZapCallLogger{Target: logger},
	}
}

// Call invokes the JSON-RPC method with the given positional arguments and
// decodes the response into result, which must be a non-nil pointer.
//
// The response is decoded as described by btcrpc.Decode(). It returns a
// *btcrpc.TransportError if the request can not be delivered, or a
// *btcrpc.DecodeError if the response can not be decoded into result, including
// when the server responds with a JSON-RPC error.
//
// It panics if method is empty, if any of the arguments can not be marshaled,
// or if result is not a non-nil pointer.
func (c *Client) Call(
	ctx context.Context,
	method string,
	args []any,
	result any,
) error {
	req, err := btcrpc.NewRequest(method, args)
	if err != nil {
		panic(fmt.Sprintf(
			"unable to call JSON-RPC method (%s): %s",
			method,
			err,
		))
	}

	if err := req.Validate(); err != nil {
		panic(fmt.Sprintf(
			"unable to call JSON-RPC method (%s): %s",
			method,
			err,
		))
	}

	if !validateResultParameter(result) {
		panic(fmt.Sprintf(
			"unable to call JSON-RPC method (%s): result must be a non-nil pointer",
			method,
		))
	}

	res, err := c.caller.Call(ctx, req)
	if err != nil {
		err = &btcrpc.TransportError{
			Method: method,
			Cause:  err,
		}
	} else if derr := btcrpc.Decode(res, result); derr != nil {
		err = &btcrpc.DecodeError{
			Method: method,
			Cause:  derr,
		}
	}

	c.logger.LogCall(ctx, req, res, err)

	return err
}

// validateResultParameter returns true if r is a valid variable into which a
// JSON-RPC result value can be written.
func validateResultParameter(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)

	if rv.Kind() != reflect.Ptr {
		return false
	}

	if rv.IsNil() {
		return false
	}

	return true
}
