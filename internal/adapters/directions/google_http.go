package directions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/barbatjuan/ruteo/internal/ports"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Body)
}

// statusError is a non-retryable application-level failure reported by the
// provider (invalid request, denied key, quota configuration).
type statusError struct {
	Status  string
	Message string
}

func (e *statusError) Error() string {
	if e.Message == "" {
		return "provider status " + e.Status
	}
	return "provider status " + e.Status + ": " + e.Message
}

func (g *GoogleProvider) newRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	params.Set("key", g.apiKey)
	if g.language != "" {
		params.Set("language", g.language)
	}
	if g.region != "" {
		params.Set("region", g.region)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (g *GoogleProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// classifyTransport wraps network errors, rate limits and 5xx responses as
// transient; other HTTP failures stay permanent.
func classifyTransport(err error) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case 429, 500, 502, 503, 504:
			return &ports.TransientError{Err: he}
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &ports.TransientError{Err: err}
	}

	return err
}

// classifyStatus maps the provider's application-level status codes to the
// typed error taxonomy. "OK" is success; "ZERO_RESULTS" means no usable
// route; the generic unknown-error class and rate limiting are transient;
// everything else (denied key, invalid request) is permanent.
func classifyStatus(status, message string) error {
	switch status {
	case "OK":
		return nil
	case "ZERO_RESULTS", "NOT_FOUND":
		return fmt.Errorf("status %s: %w", status, ports.ErrNoRoute)
	case "UNKNOWN_ERROR", "OVER_QUERY_LIMIT":
		return &ports.TransientError{Err: &statusError{Status: status, Message: message}}
	default:
		return &statusError{Status: status, Message: message}
	}
}
