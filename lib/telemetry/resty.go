package telemetry

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

// feed payloads can run to hundreds of kilobytes, spans keep a prefix
const maxRecordedBody = 4096

// InstrumentResty attaches middleware that wraps every outgoing request
// in a span carrying standard http client attributes plus a truncated
// copy of the response body.
func InstrumentResty(client *resty.Client, tracerName string) {
	tracer := otel.Tracer(tracerName)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), req.Method)
		req.SetContext(ctx)
		return nil
	})
	client.OnAfterResponse(onAfterResponse)
	client.OnError(onError)
}

func recordBody(span trace.Span, body string) {
	if len(body) > maxRecordedBody {
		body = body[:maxRecordedBody] + "..."
	}
	span.SetAttributes(attribute.String("response/body", body))
}

func onAfterResponse(_ *resty.Client, res *resty.Response) error {
	span := trace.SpanFromContext(res.Request.Context())
	defer span.End()

	// request attributes are set here since RawRequest is still nil in
	// the before hook
	span.SetName(fmt.Sprintf("http %s", res.Request.Method))
	span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)
	span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)
	recordBody(span, res.String())

	return nil
}

func onError(req *resty.Request, err error) {
	span := trace.SpanFromContext(req.Context())
	defer span.End()

	span.SetName(fmt.Sprintf("http %s", req.Method))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if req.RawRequest != nil {
		span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
	}
}
