package btcrpc_test

import (
	"errors"

	. "github.com/dogmatiq/btcrpc"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("type Error", func() {
	Describe("func Code()", func() {
		It("returns the error code", func() {
			err := NewError(VerifyRejectedCode, "<message>")
			Expect(err.Code()).To(Equal(VerifyRejectedCode))
		})
	})

	Describe("func Message()", func() {
		It("returns the server-supplied message", func() {
			err := NewError(VerifyRejectedCode, "<message>")
			Expect(err.Message()).To(Equal("<message>"))
		})

		It("returns the error code description when there is no server-supplied message", func() {
			err := NewError(VerifyRejectedCode, "")
			Expect(err.Message()).To(Equal("transaction rejected"))
		})
	})

	Describe("func Error()", func() {
		It("includes the error code description when there is no server-supplied message", func() {
			err := NewError(MethodNotFoundCode, "")
			Expect(err).To(MatchError("[-32601] method not found"))
		})

		It("includes both the error code description and the server-supplied message when the error code is predefined", func() {
			err := NewError(MethodNotFoundCode, "Method not found")
			Expect(err).To(MatchError("[-32601] method not found: Method not found"))
		})

		It("includes only the server-supplied message when the error code is not predefined", func() {
			err := NewError(VerifyErrorCode, "bad-txns-inputs-missingorspent")
			Expect(err).To(MatchError("[-25] bad-txns-inputs-missingorspent"))
		})
	})
})

var _ = Describe("type ErrorInfo", func() {
	Describe("func Err()", func() {
		It("returns an equivalent Go error", func() {
			info := ErrorInfo{
				Code:    MiscErrorCode,
				Message: "<message>",
			}

			Expect(info.Err()).To(Equal(NewError(MiscErrorCode, "<message>")))
		})
	})

	Describe("func String()", func() {
		It("describes the error", func() {
			info := ErrorInfo{
				Code:    InWarmupCode,
				Message: "Loading block index...",
			}

			Expect(info.String()).To(Equal("[-28] Loading block index..."))
		})
	})
})

var _ = Describe("type TransportError", func() {
	It("describes the method and the cause", func() {
		cause := errors.New("<cause>")
		err := &TransportError{Method: "getblockcount", Cause: cause}

		Expect(err).To(MatchError("unable to call JSON-RPC method (getblockcount): <cause>"))
		Expect(errors.Is(err, cause)).To(BeTrue())
	})
})

var _ = Describe("type DecodeError", func() {
	It("describes the method and the cause", func() {
		cause := NewError(MiscErrorCode, "x")
		err := &DecodeError{Method: "getblockcount", Cause: cause}

		Expect(err).To(MatchError("unable to process JSON-RPC response (getblockcount): [-1] x"))

		var rpcErr *Error
		Expect(errors.As(err, &rpcErr)).To(BeTrue())
		Expect(rpcErr).To(BeIdenticalTo(cause))
	})
})
