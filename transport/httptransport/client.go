package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dogmatiq/btcrpc"
)

// mediaType is the value of the "Content-Type" header sent with each request.
//
// It is not "application/json", as Bitcoin Core's own tooling sends this value
// and some compatible servers only accept it.
const mediaType = "text/plain;"

// Client is an HTTP-based JSON-RPC transport. It implements btcrpc.Caller.
//
// It is safe for concurrent use. Each call performs its own HTTP round trip.
type Client struct {
	// HTTPClient is the HTTP client used to make requests. If it is nil,
	// http.DefaultClient is used.
	//
	// The same HTTP client is used for every request, allowing its transport
	// to reuse connections.
	HTTPClient *http.Client

	// URL is the URL of the JSON-RPC server.
	URL string

	// Auth describes the credentials sent with each request.
	Auth btcrpc.Auth
}

var _ btcrpc.Caller = (*Client)(nil)

// Call sends req to the server and returns the body of its response.
//
// The body is returned regardless of the HTTP status code, as Bitcoin Core
// reports JSON-RPC errors with a non-2xx status.
func (c *Client) Call(ctx context.Context, req btcrpc.Request) (json.RawMessage, error) {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}

	httpRes, err := hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read HTTP response body: %w", err)
	}

	return body, nil
}

// newHTTPRequest returns the HTTP request used to send req.
func (c *Client) newHTTPRequest(
	ctx context.Context,
	req btcrpc.Request,
) (*http.Request, error) {
	body, err := json.Marshal(req)
	if err != nil {
		// CODE COVERAGE: This only fails if req.Parameters is not valid JSON,
		// which can not occur for requests built by btcrpc.NewRequest().
		panic(err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.URL,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", mediaType)

	username, password, ok, err := c.Auth.Credentials()
	if err != nil {
		return nil, fmt.Errorf("unable to load credentials: %w", err)
	}

	if ok {
		httpReq.SetBasicAuth(username, password)
	}

	return httpReq, nil
}
