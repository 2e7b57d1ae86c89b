package tripplan

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const DefaultProbeTimeout = 5 * time.Second

// HTTPImageChecker probes image URLs with a HEAD request.
type HTTPImageChecker struct {
	client *http.Client
}

// NewHTTPImageChecker bounds each probe by timeout; non-positive uses DefaultProbeTimeout.
func NewHTTPImageChecker(timeout time.Duration) *HTTPImageChecker {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &HTTPImageChecker{client: &http.Client{Timeout: timeout}}
}

// Check succeeds on a 2xx answer whose content type starts with "image/".
// Any transport error counts as unusable.
func (c *HTTPImageChecker) Check(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	return strings.HasPrefix(strings.ToLower(resp.Header.Get("Content-Type")), "image/")
}
