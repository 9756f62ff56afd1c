package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/dogmatiq/btcrpc"
)

// Node is a fake Bitcoin Core JSON-RPC endpoint. It implements http.Handler.
//
// It only accepts requests that use the POST method and the "text/plain;"
// content type, exactly as sent by the HTTP transport.
type Node struct {
	username    string
	password    string
	requireAuth bool
	routes      map[string]routeFunc

	m        sync.Mutex
	requests []ReceivedRequest
}

// ReceivedRequest is a request received by a Node.
type ReceivedRequest struct {
	Header http.Header
	Body   []byte
	Parsed btcrpc.Request
}

// NodeOption is an option that changes the behavior of a Node.
type NodeOption func(*Node)

// NewNode returns a new fake node with the given options.
func NewNode(options ...NodeOption) *Node {
	n := &Node{}

	for _, opt := range options {
		opt(n)
	}

	return n
}

// WithCredentials is a NodeOption that requires requests to use HTTP basic
// authentication with the given username and password.
func WithCredentials(username, password string) NodeOption {
	return func(n *Node) {
		n.username = username
		n.password = password
		n.requireAuth = true
	}
}

// WithRoute is a NodeOption that handles the method m by calling h with the
// request's positional parameters.
//
// The result is sent in a JSON-RPC envelope. If h returns an error it is sent
// as a JSON-RPC error object, using the code of a *btcrpc.Error or
// btcrpc.MiscErrorCode for any other error.
func WithRoute(
	m string,
	h func(params []json.RawMessage) (any, error),
) NodeOption {
	return withHandler(
		m,
		func(w http.ResponseWriter, req btcrpc.Request) {
			var params []json.RawMessage
			if err := json.Unmarshal(req.Parameters, &params); err != nil {
				writeError(w, http.StatusBadRequest, btcrpc.InvalidParametersCode, err.Error())
				return
			}

			result, err := h(params)
			if err != nil {
				var rpcErr *btcrpc.Error
				if errors.As(err, &rpcErr) {
					writeError(w, http.StatusInternalServerError, rpcErr.Code(), rpcErr.Message())
				} else {
					writeError(w, http.StatusInternalServerError, btcrpc.MiscErrorCode, err.Error())
				}
				return
			}

			writeResult(w, result)
		},
	)
}

// WithRawRoute is a NodeOption that responds to the method m with the given
// HTTP status code and body, unchanged.
func WithRawRoute(m string, status int, body string) NodeOption {
	return withHandler(
		m,
		func(w http.ResponseWriter, _ btcrpc.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			io.WriteString(w, body) // nolint:errcheck
		},
	)
}

// routeFunc writes the response to a request for a specific method.
type routeFunc func(http.ResponseWriter, btcrpc.Request)

func withHandler(m string, h routeFunc) NodeOption {
	return func(n *Node) {
		if _, ok := n.routes[m]; ok {
			panic(fmt.Sprintf("duplicate route for '%s' method", m))
		}

		if n.routes == nil {
			n.routes = map[string]routeFunc{}
		}

		n.routes[m] = h
	}
}

// Requests returns the requests that have been received by the node, in the
// order they were received.
func (n *Node) Requests() []ReceivedRequest {
	n.m.Lock()
	defer n.m.Unlock()

	return append([]ReceivedRequest(nil), n.requests...)
}

// ServeHTTP handles the HTTP request.
func (n *Node) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if ct := r.Header.Get("Content-Type"); ct != "text/plain;" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}

	if n.requireAuth {
		username, password, ok := r.BasicAuth()
		if !ok || username != n.username || password != n.password {
			// Bitcoin Core responds to bad credentials with an empty body.
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req btcrpc.Request
	parseErr := json.Unmarshal(body, &req)

	n.m.Lock()
	n.requests = append(n.requests, ReceivedRequest{
		Header: r.Header.Clone(),
		Body:   body,
		Parsed: req,
	})
	n.m.Unlock()

	if parseErr != nil {
		writeError(w, http.StatusBadRequest, btcrpc.ParseErrorCode, parseErr.Error())
		return
	}

	h, ok := n.routes[req.Method]
	if !ok {
		writeError(w, http.StatusNotFound, btcrpc.MethodNotFoundCode, "Method not found")
		return
	}

	h(w, req)
}

// writeResult writes a successful JSON-RPC envelope to w.
func writeResult(w http.ResponseWriter, result any) {
	data, err := json.Marshal(result)
	if err != nil {
		panic(err)
	}

	writeEnvelope(w, http.StatusOK, btcrpc.Envelope{
		Result: data,
	})
}

// writeError writes a JSON-RPC error envelope to w.
func writeError(w http.ResponseWriter, status int, code btcrpc.ErrorCode, message string) {
	writeEnvelope(w, status, btcrpc.Envelope{
		Result: json.RawMessage(`null`),
		Error: &btcrpc.ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func writeEnvelope(w http.ResponseWriter, status int, env btcrpc.Envelope) {
	env.RequestID = json.RawMessage(`"` + btcrpc.RequestID + `"`)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env) // nolint:errcheck
}
