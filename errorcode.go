package btcrpc

import "fmt"

// ErrorCode is a JSON-RPC error code.
//
// As per the JSON-RPC specification, the error codes from and including -32768
// to -32000 are reserved for pre-defined errors. Bitcoin Core uses small
// negative codes for its application-defined errors, the most common of which
// are defined as constants below.
type ErrorCode int

const (
	// ParseErrorCode indicates that the server failed to parse a JSON-RPC
	// request.
	ParseErrorCode ErrorCode = -32700

	// InvalidRequestCode indicates that the server received a well-formed but
	// otherwise invalid JSON-RPC request.
	InvalidRequestCode ErrorCode = -32600

	// MethodNotFoundCode indicates that the server received a request for an
	// RPC method that does not exist.
	MethodNotFoundCode ErrorCode = -32601

	// InvalidParametersCode indicates that the server received a request that
	// contained malformed or invalid parameters.
	InvalidParametersCode ErrorCode = -32602

	// InternalErrorCode indicates that some other error condition was raised
	// within the RPC server.
	InternalErrorCode ErrorCode = -32603
)

const (
	// MiscErrorCode is Bitcoin Core's RPC_MISC_ERROR, raised for exceptions
	// that are not otherwise classified.
	MiscErrorCode ErrorCode = -1

	// TypeErrorCode is Bitcoin Core's RPC_TYPE_ERROR, raised when a parameter
	// has an unexpected type.
	TypeErrorCode ErrorCode = -3

	// InvalidParameterCode is Bitcoin Core's RPC_INVALID_PARAMETER.
	InvalidParameterCode ErrorCode = -8

	// DeserializationErrorCode is Bitcoin Core's RPC_DESERIALIZATION_ERROR,
	// raised when a raw transaction can not be decoded.
	DeserializationErrorCode ErrorCode = -22

	// VerifyErrorCode is Bitcoin Core's RPC_VERIFY_ERROR, a general error
	// during transaction submission.
	VerifyErrorCode ErrorCode = -25

	// VerifyRejectedCode is Bitcoin Core's RPC_VERIFY_REJECTED, raised when a
	// transaction is rejected by network rules.
	VerifyRejectedCode ErrorCode = -26

	// VerifyAlreadyInChainCode is Bitcoin Core's RPC_VERIFY_ALREADY_IN_CHAIN.
	VerifyAlreadyInChainCode ErrorCode = -27

	// InWarmupCode is Bitcoin Core's RPC_IN_WARMUP, returned while the node is
	// still starting.
	InWarmupCode ErrorCode = -28
)

// IsReserved returns true if c falls within the range of error codes reserved
// for pre-defined errors.
func (c ErrorCode) IsReserved() bool {
	return c >= -32768 && c <= -32000
}

// IsPredefined returns true if c is an error code defined by the JSON-RPC
// specification.
func (c ErrorCode) IsPredefined() bool {
	switch c {
	case ParseErrorCode,
		InvalidRequestCode,
		MethodNotFoundCode,
		InvalidParametersCode,
		InternalErrorCode:
		return true
	default:
		return false
	}
}

// String returns a brief description of the error.
func (c ErrorCode) String() string {
	switch c {
	case ParseErrorCode:
		return "parse error"
	case InvalidRequestCode:
		return "invalid request"
	case MethodNotFoundCode:
		return "method not found"
	case InvalidParametersCode:
		return "invalid parameters"
	case InternalErrorCode:
		return "internal server error"
	case MiscErrorCode:
		return "miscellaneous error"
	case TypeErrorCode:
		return "type error"
	case InvalidParameterCode:
		return "invalid parameter"
	case DeserializationErrorCode:
		return "deserialization error"
	case VerifyErrorCode:
		return "verify error"
	case VerifyRejectedCode:
		return "transaction rejected"
	case VerifyAlreadyInChainCode:
		return "transaction already in chain"
	case InWarmupCode:
		return "node in warmup"
	}

	if c.IsReserved() {
		return "undefined reserved error"
	}

	return "unknown error"
}

// describeError returns a short string containing the most useful information
// from an error code and a server-supplied message.
func describeError(code ErrorCode, message string) string {
	if message == "" || message == code.String() {
		// The error message does not contain any more information than the
		// description of the error code.
		return fmt.Sprintf("[%d] %s", code, code)
	}

	if code.IsPredefined() {
		return fmt.Sprintf("[%d] %s: %s", code, code, message)
	}

	// Bitcoin Core's messages are more specific than any description of its
	// codes, so only the message is shown.
	return fmt.Sprintf("[%d] %s", code, message)
}
