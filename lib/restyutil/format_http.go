package restyutil

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for k, vals := range headers {
		for _, v := range vals {
			fmt.Fprintf(&out, "%s: %s\n", k, v)
		}
	}
	return strings.TrimSuffix(out.String(), "\n")
}

// 1: request method
// 2: request url
// 3: request headers ("Key: Value" format)
// 4: response status
// 5: response headers ("Key: Value" format)
// 6: response body
const messageInfoTemplate = `---- REQUEST ----

%s %s

%s

---- RESPONSE ----

%s

%s

%s`

func formatHttpMessage(res *resty.Response) string {
	var requestHeaders string
	if res.Request.RawRequest != nil {
		requestHeaders = formatHeaders(res.Request.RawRequest.Header)
	}

	return fmt.Sprintf(
		messageInfoTemplate,

		res.Request.Method, res.Request.URL,
		requestHeaders,

		strconv.Itoa(res.StatusCode()),
		formatHeaders(res.Header()),
		res.String(),
	)
}
