// Package upstream is the HTTP client for the commerce backend that
// owns products, orders and users. Everything durable lives behind it;
// this service is a pure caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"raynott-storefront/internal/domain"
)

// Client talks to the upstream commerce API. A circuit breaker wraps
// every call so a dead upstream fails fast instead of tying up request
// handlers for the full timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	logger     *zap.Logger
}

// New builds a Client for the given base URL. Trailing slashes are
// normalized away so path joining stays predictable.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:    "upstream-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		logger:     logger,
	}
}

type apiError struct {
	Message string `json:"message"`
}

// do executes one request against the upstream API and decodes the JSON
// response into out (when out is non-nil). Transport failures and
// non-2xx statuses come back wrapped in domain.ErrUpstream, except 404
// (domain.ErrNotFound) and 401/403 (domain.ErrUnauthorized) which the
// handlers map to their own statuses.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %s %s: %w", domain.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", domain.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return domain.ErrNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.ErrUnauthorized
		}
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrUpstream, method, path, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrUpstream, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrUpstream, err)
	}
	return nil
}

// Ping checks reachability for the readiness probe by listing products.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/products", "", nil, nil, nil)
}
