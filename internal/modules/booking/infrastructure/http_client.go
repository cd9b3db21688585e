package infrastructure

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBookingAPIURL = "http://localhost:3000"
	defaultClientTimeout = 10 * time.Second
	gatewayUserAgent     = "petstay-gateway"
)

// RESTClient wraps http.Client with base URL handling so the booking adapter
// does not repeat request boilerplate. Every request carries the configured
// timeout so a hung remote call can never block a submit flow indefinitely.
type RESTClient struct {
	baseURL string
	client  *http.Client
}

func NewRESTClient(baseURL string, timeout time.Duration, client *http.Client) *RESTClient {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBookingAPIURL
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	} else if timeout > 0 {
		client.Timeout = timeout
	}
	return &RESTClient{baseURL: trimmed, client: client}
}

func (c *RESTClient) NewRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", gatewayUserAgent)
	return req, nil
}

func (c *RESTClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return defaultClientTimeout
	}
	return value
}
