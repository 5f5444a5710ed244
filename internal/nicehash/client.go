package nicehash

import (
	"net/http"
)

const (
	baseURL = "https://www.nicehash.com"

	// simpleMultiAlgoPath is the legacy public API method listing what
	// every algorithm currently pays.
	simpleMultiAlgoPath = "/api?method=simplemultialgo.info"

	defaultMaxBodyBytes = 4 << 20
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=nicehash_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the NiceHash simplemultialgo API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP client.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes int64
}

// ClientOption is a configuration option for the NiceHash client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithMaxBodyBytes caps the response body size. Values <= 0 keep the default.
func WithMaxBodyBytes(n int64) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// NewClient creates a new NiceHash client.
func NewClient(options ...ClientOption) *Client {
	var client = &Client{
		baseURL:      baseURL,
		httpClient:   http.DefaultClient,
		header:       http.Header{},
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, option := range options {
		option(client)
	}
	return client
}
