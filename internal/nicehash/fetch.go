package nicehash

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrMaintenance is returned when the service answers 503, which it
	// does while in maintenance mode.
	ErrMaintenance = errors.New("nicehash: service in maintenance")
	// ErrUnexpectedStatus is returned for any other non-200 status.
	ErrUnexpectedStatus = errors.New("nicehash: unexpected status code")
	// ErrBodyTooLarge is returned when the body exceeds the configured cap.
	ErrBodyTooLarge = errors.New("nicehash: response body too large")
)

// Fetch issues one GET for simplemultialgo.info and returns the raw body.
// It never retries and does not interpret the body.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	url := c.baseURL + simpleMultiAlgoPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusServiceUnavailable:
		return nil, ErrMaintenance

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, c.maxBodyBytes)
	}
	return body, nil
}
