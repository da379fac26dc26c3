package backend

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "http://localhost:8090"

// Client implements ports.Gateway over HTTP against the planner backend.
//
// It performs exactly one round trip per call and never retries. No timeout is
// applied unless one is configured; callers bound requests with their context.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base url is empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("backend base url must be absolute, e.g. http://localhost:8090")
	}

	client := &Client{
		session: &http.Client{
			Timeout:   timeout,
			Transport: &loggingTransport{next: http.DefaultTransport},
		},
		baseURL: baseURL,
	}

	return client, nil
}

func (c *Client) BaseURL() string { return c.baseURL }
