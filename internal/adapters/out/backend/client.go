// Package backend implements the HTTP clients for the external Lytefood
// services: auth, menu, orders, and payments. Each client wraps one service
// base URL and translates its JSON payloads into domain objects.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// httpDoer is the subset of http.Client the clients rely on.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// restClient carries what every service client needs: the base URL and the
// underlying HTTP client.
type restClient struct {
	baseURL string
	client  httpDoer
}

func newRestClient(baseURL string, client httpDoer) restClient {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return restClient{baseURL: baseURL, client: client}
}

// doJSON performs one JSON request against the service. A non-nil body is
// encoded as the request payload; a non-nil out receives the decoded
// response. The bearer token is attached when present.
func (c restClient) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// StatusError reports a non-2xx response from a backend service.
type StatusError struct {
	StatusCode int
	Body       string
}

func newStatusError(resp *http.Response) *StatusError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Body)
}
