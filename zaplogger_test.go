package btcrpc_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	. "github.com/dogmatiq/btcrpc"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("type ZapCallLogger", func() {
	var (
		ctx     context.Context
		request Request
		buffer  bytes.Buffer
		logger  ZapCallLogger
	)

	BeforeEach(func() {
		ctx = context.Background()

		request = Request{
			Version:    "2.0",
			ID:         RequestID,
			Method:     "method",
			Parameters: json.RawMessage(`[1, 2, 3]`),
		}

		buffer.Reset()

		logger = ZapCallLogger{
			Target: zap.New(
				zapcore.NewCore(
					zapcore.NewConsoleEncoder(
						zap.NewDevelopmentEncoderConfig(),
					),
					zapcore.AddSync(&buffer),
					zapcore.DebugLevel,
				),
			),
		}
	})

	Describe("func LogCall()", func() {
		It("logs the request and response information", func() {
			logger.LogCall(ctx, request, json.RawMessage(`123`), nil)
			logger.Target.Sync()

			Expect(buffer.String()).To(
				ContainSubstring(
					`INFO	call method	{"param_size": 9, "result_size": 3}`,
				),
			)
		})

		It("quotes empty method names", func() {
			request.Method = ""
			logger.LogCall(ctx, request, json.RawMessage(`123`), nil)
			logger.Target.Sync()

			Expect(buffer.String()).To(
				ContainSubstring(
					`call ""	{"param_size": 9, "result_size": 3}`,
				),
			)
		})

		It("quotes and escapes methods names that contain whitespace and non-printable characters", func() {
			request.Method = "<the method>\x00"
			logger.LogCall(ctx, request, json.RawMessage(`123`), nil)
			logger.Target.Sync()

			Expect(buffer.String()).To(
				ContainSubstring(
					`call "<the method>\x00"	{"param_size": 9, "result_size": 3}`,
				),
			)
		})

		It("logs details of a transport error", func() {
			err := &TransportError{
				Method: "method",
				Cause:  errors.New("<error>"),
			}

			logger.LogCall(ctx, request, nil, err)
			logger.Target.Sync()

			Expect(buffer.String()).To(
				ContainSubstring(
					`ERROR	call method	{"param_size": 9, "error": "unable to call JSON-RPC method (method): <error>"}`,
				),
			)
		})

		It("logs details of a JSON-RPC error", func() {
			err := &DecodeError{
				Method: "method",
				Cause:  NewError(VerifyRejectedCode, "txn-mempool-conflict"),
			}

			logger.LogCall(ctx, request, json.RawMessage(`{}`), err)
			logger.Target.Sync()

			Expect(buffer.String()).To(
				ContainSubstring(
					`ERROR	call method	{"param_size": 9, "result_size": 2, "error_code": -26, "error": "unable to process JSON-RPC response (method): [-26] txn-mempool-conflict"}`,
				),
			)
		})

		It("includes the trace ID if the context has a recording span", func() {
			provider := tracesdk.NewTracerProvider()
			ctx, span := provider.Tracer("<tracer>").Start(ctx, "<span>")
			defer span.End()

			logger.LogCall(ctx, request, json.RawMessage(`123`), nil)
			logger.Target.Sync()

			Expect(buffer.String()).To(
				ContainSubstring(
					`{"param_size": 9, "trace_id": "` + span.SpanContext().TraceID().String() + `", "result_size": 3}`,
				),
			)
		})
	})
})
