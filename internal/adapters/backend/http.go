package backend

import (
	"aviation-route-planner/internal/domain"
	"aviation-route-planner/internal/platform/obs"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Send performs one round trip and decodes the JSON response into out.
// Every failure, including non-2xx statuses, is reported as *domain.NetworkError.
func (c *Client) Send(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, _ = obs.WithRequestID(ctx)
	defer obs.Time(ctx, "backend."+method+" "+path)(&err)

	op, resource := describe(method, path)

	req, err := c.newRequest(ctx, method, c.baseURL+path, body)
	if err != nil {
		return domain.NewNetworkError(op, resource, err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.NewNetworkError(op, resource, err)
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewNetworkError(op, resource, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	url string,
	body any,
) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// describe derives the verb and resource name used in user-facing messages,
// e.g. GET /api/v1/location -> ("fetch", "locations").
func describe(method, path string) (string, string) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	name := "resource"
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] == "v1" {
			name = segments[i+1]
			break
		}
	}

	switch method {
	case http.MethodGet:
		return "fetch", plural(name)
	case http.MethodPost:
		if name == "route" {
			return "fetch", "routes"
		}
		return "create", name
	case http.MethodPut:
		return "update", name
	case http.MethodDelete:
		return "delete", name
	}
	return strings.ToLower(method), name
}

func plural(s string) string {
	if strings.HasSuffix(s, "s") {
		return s
	}
	return s + "s"
}
