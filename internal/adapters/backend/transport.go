package backend

import (
	"aviation-route-planner/internal/platform/obs"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// countingBody records how many response bytes the caller actually read.
type countingBody struct {
	io.ReadCloser
	bytes int
	done  func(n int)
}

func (b *countingBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.bytes += n
	return n, err
}

func (b *countingBody) Close() error {
	err := b.ReadCloser.Close()
	if b.done != nil {
		b.done(b.bytes)
		b.done = nil
	}
	return err
}

// loggingTransport logs each backend round trip with its status, size and duration.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	reqID := obs.RequestID(req.Context())

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		log.Warn().
			Str("req_id", reqID).
			Str("method", req.Method).
			Str("path", req.URL.RequestURI()).
			Str("latency", time.Since(start).String()).
			Err(err).
			Msg("backend request failed")
		return nil, err
	}

	status := resp.StatusCode
	resp.Body = &countingBody{
		ReadCloser: resp.Body,
		done: func(n int) {
			event := log.Debug()
			if status >= http.StatusBadRequest {
				event = log.Warn()
			}
			event.
				Str("req_id", reqID).
				Str("method", req.Method).
				Str("path", req.URL.RequestURI()).
				Int("status", status).
				Int("bytes", n).
				Str("latency", time.Since(start).String()).
				Msg("backend request")
		},
	}

	return resp, nil
}
