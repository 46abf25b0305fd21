package tracing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aalemi-dev/tracekit/config"
)

// HTTPSender delivers encoded span batches to a Zipkin-compatible HTTP
// collector with a single POST per batch.
//
// HTTPSender implements the Sender interface and is safe for use from the
// reporter's background goroutine.
type HTTPSender struct {
	endpoint string
	encoding Encoding
	client   *http.Client
}

// newHTTPSender constructs the HTTP transport from the endpoint option and
// the resolved encoding. No connection is opened here; failures surface on
// the background export path, never at assembly time.
func newHTTPSender(src config.Source, encoding Encoding) *HTTPSender {
	return &HTTPSender{
		endpoint: httpEndpointOption.Get(src),
		encoding: encoding,
		client:   &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// Endpoint returns the collector URL this sender posts to.
func (s *HTTPSender) Endpoint() string {
	return s.endpoint
}

// Encoding returns the span encoding this sender was built for.
func (s *HTTPSender) Encoding() Encoding {
	return s.encoding
}

// Send posts one batch of encoded spans to the collector.
func (s *HTTPSender) Send(ctx context.Context, spans [][]byte) error {
	body := encodeBatch(s.encoding, spans)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build collector request: %w", err)
	}
	req.Header.Set("Content-Type", s.encoding.MediaType())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post spans to %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("collector %s rejected spans: %s", s.endpoint, resp.Status)
	}
	return nil
}

// Close releases idle connections held by the underlying HTTP client.
func (s *HTTPSender) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
