package btcrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Envelope is the JSON-RPC response object, as sent by Bitcoin Core.
//
// Callers that need to inspect the envelope themselves may use it (or their
// own equivalent type) as the result type of a call, in which case it is
// decoded as-is.
type Envelope struct {
	// Version is the JSON-RPC version, if present.
	Version string `json:"jsonrpc,omitempty"`

	// RequestID is the ID of the request that produced this response.
	RequestID json.RawMessage `json:"id,omitempty"`

	// Result is the result value. It is null if Error is non-nil.
	Result json.RawMessage `json:"result"`

	// Error describes the error produced in response to the request, if any.
	Error *ErrorInfo `json:"error"`
}

// Decode decodes the body of a response into result, which must be a non-nil
// pointer.
//
// The body is first decoded directly into result. Whatever the server returns
// is decoded as-is, so a result type that models the JSON-RPC envelope receives
// the whole envelope.
//
// If the body can not be decoded into result but it is a JSON object with a
// "result" or "error" member, it is treated as an Envelope. A non-null error
// member is returned as an *Error, otherwise the result member is decoded into
// result.
//
// On success the value that result points to is replaced. On failure it is
// left unchanged.
func Decode(body []byte, result any) error {
	target := reflect.ValueOf(result).Elem()

	direct := reflect.New(target.Type())
	err := json.Unmarshal(body, direct.Interface())
	if err == nil {
		target.Set(direct.Elem())
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return err
	}

	members, ok := envelopeMembers(body)
	if !ok {
		return err
	}

	if e, ok := members["error"]; ok && !isNull(e) {
		var info ErrorInfo
		if err := json.Unmarshal(e, &info); err != nil {
			return fmt.Errorf("unable to unmarshal error: %w", err)
		}

		return info.Err()
	}

	r, ok := members["result"]
	if !ok {
		return err
	}

	unwrapped := reflect.New(target.Type())
	if err := json.Unmarshal(r, unwrapped.Interface()); err != nil {
		return fmt.Errorf("unable to unmarshal result: %w", err)
	}

	target.Set(unwrapped.Elem())

	return nil
}

// envelopeMembers returns the members of body if it is a JSON object that has
// a "result" or "error" member.
func envelopeMembers(body []byte) (map[string]json.RawMessage, bool) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, false
	}

	_, hasResult := members["result"]
	_, hasError := members["error"]

	return members, hasResult || hasError
}

// isNull returns true if v is the JSON null literal.
func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte(`null`))
}
