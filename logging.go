package btcrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// CallLogger is an interface for logging JSON-RPC calls.
type CallLogger interface {
	// LogCall logs about a call and its outcome.
	//
	// res is the body of the response, which is nil if the request could not
	// be delivered. err is the error returned to the caller, if any.
	LogCall(ctx context.Context, req Request, res json.RawMessage, err error)
}

// writeMethod formats a JSON-RPC method name for display and writes it to w.
func writeMethod(w *strings.Builder, m string) {
	if m == "" || !isAlphaNumeric(m) {
		fmt.Fprintf(w, "%#v", m)
	} else {
		w.WriteString(m)
	}
}

// isAlphaNumeric returns true if s consists of only letters and digits.
func isAlphaNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}

	return true
}
