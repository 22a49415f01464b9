package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/approval/pkg/logger"
)

// LoggingRoundTripper propagates the request id to downstream services and
// logs outbound calls.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	return &LoggingRoundTripper{Transport: transport}
}

func (t *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	return resp, nil
}
