// Package commerce is the HTTP client for the upstream commerce API. It is
// an anti-corruption layer: wire shapes live here and are mapped to domain
// types before anything else sees them.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/pkg/logging"
)

var _ contracts.CommerceGateway = (*Client)(nil)

// Client talks to the commerce backend. All methods take a context and
// return domain types; responses are never retried (failures surface as a
// degraded view upstream, not as retry storms).
type Client struct {
	http    *http.Client
	baseURL string
	logger  logging.Logger
}

// NewClient builds a production client with an instrumented transport.
func NewClient(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return newClient(httpClient, baseURL, logger)
}

// newClient is the injectable constructor used by tests.
func newClient(httpClient *http.Client, baseURL string, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Client{http: httpClient, baseURL: baseURL, logger: logger}
}

// envelope is the upstream response wrapper: payload under "data", an
// optional top-level message.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// getJSON issues a GET and decodes the enveloped payload into out.
// token, when non-empty, is sent as a bearer credential.
func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, token, nil, out)
}

// postJSON issues a POST with a JSON body and decodes the enveloped payload
// into out. out may be nil when the response body is irrelevant.
func (c *Client) postJSON(ctx context.Context, path, token string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			c.logger.Warn("close response body", map[string]interface{}{"error": closeErr.Error()})
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return parseAPIError(res.StatusCode, raw)
	}
	if out == nil {
		return nil
	}

	// Some endpoints respond without the wrapper; arrays and envelope-less
	// objects decode from the raw body.
	payload := raw
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%s %s: decode payload: %w", method, path, err)
	}
	return nil
}
