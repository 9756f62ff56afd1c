package btcrpc

import "fmt"

// Error is a Go error that describes a JSON-RPC error object returned by the
// server.
type Error struct {
	code    ErrorCode
	message string
}

// NewError returns a new JSON-RPC error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		code:    code,
		message: message,
	}
}

// Code returns the JSON-RPC error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
//
// If the server did not supply a message, the description of the error code is
// returned instead.
func (e *Error) Message() string {
	if e.message != "" {
		return e.message
	}

	return e.code.String()
}

// Error returns the error message.
func (e *Error) Error() string {
	return describeError(e.code, e.message)
}

// ErrorInfo is the JSON representation of a JSON-RPC error object. It is not a
// Go error.
type ErrorInfo struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Err returns the Go error equivalent to e.
func (e ErrorInfo) Err() *Error {
	return NewError(e.Code, e.Message)
}

func (e ErrorInfo) String() string {
	return describeError(e.Code, e.Message)
}

// TransportError indicates that a JSON-RPC request could not be delivered, or
// that its response could not be read.
//
// Typical causes are DNS, connection, TLS and timeout failures.
type TransportError struct {
	// Method is the name of the method that was called.
	Method string

	// Cause is the error produced by the transport.
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to call JSON-RPC method (%s): %s", e.Method, e.Cause)
}

// Unwrap returns the cause of e.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// DecodeError indicates that a response was received but could not be decoded
// into the requested result type.
//
// If the server responded with a JSON-RPC error object the cause is an *Error.
type DecodeError struct {
	// Method is the name of the method that was called.
	Method string

	// Cause is the decoding error, or the JSON-RPC error returned by the
	// server.
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to process JSON-RPC response (%s): %s", e.Method, e.Cause)
}

// Unwrap returns the cause of e.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}
