package middleware

import (
	"io"
	"net/http"
	"strings"
)

// HeaderCaptureMiddleware records the headers of the last request and answers
// it with an empty 200 response instead of sending it.
type HeaderCaptureMiddleware struct {
	CapturedHeaders map[string]string
}

func (h *HeaderCaptureMiddleware) RoundTrip(request *http.Request) (*http.Response, error) {
	h.CapturedHeaders = make(map[string]string, len(request.Header))
	for k := range request.Header {
		h.CapturedHeaders[k] = request.Header.Get(k)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    request,
	}, nil
}
