// Package restyutil captures raw request/response exchanges from a
// resty client for offline inspection. Feed payloads are otherwise
// only visible truncated inside trace spans.
package restyutil

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

// InstrumentOutput receives one formatted exchange per message id.
// Implementations must be safe for concurrent use.
type InstrumentOutput interface {
	Write(id string, contents string)
}

type messageIdKey struct{}

type instrumentCtx struct {
	output    InstrumentOutput
	idcounter *uint64
}

// InstrumentClient attaches middleware that dumps every exchange to
// output and logs the request lifecycle at debug level. A nil output
// makes this a no-op.
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}
	var idcounter uint64
	i := instrumentCtx{output: output, idcounter: &idcounter}
	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func messageId(ctx context.Context) string {
	id, _ := ctx.Value(messageIdKey{}).(string)
	return id
}

func (i instrumentCtx) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	id := strconv.FormatUint(atomic.AddUint64(i.idcounter, 1), 10)
	ctx := context.WithValue(req.Context(), messageIdKey{}, id)
	slog.DebugContext(
		ctx, "start request",
		"method", req.Method,
		"url", req.URL,
		"message_id", id,
	)
	req.SetContext(ctx)
	return nil
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	id := messageId(ctx)
	i.output.Write(id, formatHttpMessage(res))
	slog.DebugContext(
		ctx, "request succeeded",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"message_id", id,
	)
	return nil
}

func (i instrumentCtx) onError(req *resty.Request, err error) {
	slog.ErrorContext(
		req.Context(), "request failed",
		"method", req.Method,
		"url", req.URL,
		"err", err,
		"message_id", messageId(req.Context()),
	)
}
