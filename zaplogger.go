package btcrpc

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ZapCallLogger is an implementation of CallLogger using zap.Logger.
type ZapCallLogger struct {
	// Target is the destination for log messages.
	Target *zap.Logger
}

var _ CallLogger = (*ZapCallLogger)(nil)

// LogCall logs information about a call and its outcome.
func (l ZapCallLogger) LogCall(ctx context.Context, req Request, res json.RawMessage, err error) {
	var w strings.Builder

	w.WriteString("call ")
	writeMethod(&w, req.Method)

	fields := []zap.Field{
		zap.Int("param_size", len(req.Parameters)),
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		fields = append(fields, zap.String("trace_id", span.SpanContext().TraceID().String()))
	}

	if res != nil {
		fields = append(fields, zap.Int("result_size", len(res)))
	}

	if err == nil {
		l.Target.Info(
			w.String(),
			fields...,
		)
		return
	}

	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		fields = append(fields, zap.Int("error_code", int(rpcErr.Code())))
	}

	fields = append(fields, zap.String("error", err.Error()))

	l.Target.Error(
		w.String(),
		fields...,
	)
}
