package framework

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Response is what the harness captured from one GET request to the server under test.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       string
	Elapsed    time.Duration
}

// ResolveURL resolves path against the harness's base URL. An absolute path replaces
// whatever path the base URL had; an empty path means the base URL itself.
func (h *TestHarness) ResolveURL(path string) (string, error) {
	if path == "" {
		return h.baseURL, nil
	}
	base, err := url.Parse(h.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", h.baseURL, err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// Get sends a GET request for path (relative to the base URL) and reads the whole response.
//
// The request is abandoned if it takes longer than timeout, in which case an error is
// returned. A response with any status code is not an error.
func (h *TestHarness) Get(path string, timeout time.Duration, logger Logger) (*Response, error) {
	if logger == nil {
		logger = h.logger
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	target, err := h.ResolveURL(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	logger.Printf("GET %s (timeout %s)", target, timeout)
	started := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		logger.Printf("Request to %s failed: %s", target, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body from %s: %w", target, err)
	}
	elapsed := time.Since(started)
	logger.Printf("HTTP %d from %s: %d bytes, Content-Type %q, %s",
		resp.StatusCode, target, len(body), resp.Header.Get("Content-Type"), elapsed)

	return &Response{
		URL:        target,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(body),
		Elapsed:    elapsed,
	}, nil
}
