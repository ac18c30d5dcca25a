package gateway

import (
	"net/http"

	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/dmitrijs2005/bod/internal/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// loggingTransport is the request/response hook of the gateway. It logs both
// directions under the X-Request-ID that client.do stamped on the request.
type loggingTransport struct {
	next http.RoundTripper
	log  logging.Logger
}

func newTransport(base http.RoundTripper, log logging.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{next: otelhttp.NewTransport(base), log: log}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	reqID := req.Header.Get(common.RequestIDHeaderName)

	t.log.Debug(ctx, "Making "+req.Method+" request to: "+req.URL.Path, "request_id", reqID)

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.log.Error(ctx, "API Error", "method", req.Method, "url", req.URL.Path, "request_id", reqID, "error", err)
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.log.Error(ctx, "API Error", "method", req.Method, "url", req.URL.Path, "request_id", reqID, "status", resp.StatusCode)
	} else {
		t.log.Debug(ctx, "Received response from: "+req.URL.Path, "request_id", reqID, "status", resp.StatusCode)
	}
	return resp, nil
}
