package adapter

import (
	"apod-manager/internal/core/model"
	"context"
	"fmt"
	"io"
	"net/http"
)

const defaultApodBaseURL = "https://api.nasa.gov/planetary/apod"

// apiErrMsgLimit caps how much of a non-JSON error body we carry around.
const apiErrMsgLimit = 1024

// ApodClient is a typed client for the APOD endpoint. It holds only
// immutable configuration, so a single instance is safe for concurrent
// use.
type ApodClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewApodClient(baseURL, apiKey string, httpClient *http.Client) *ApodClient {
	if baseURL == "" {
		baseURL = defaultApodBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ApodClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  httpClient,
	}
}

// Get performs exactly one GET for the given params and returns the
// decoded entries. Count and range queries return several entries, a
// single-date query returns one. Failures are never retried here.
func (c *ApodClient) Get(ctx context.Context, params model.ApodParams) ([]model.Apod, error) {
	q := params.Values()
	q.Set("api_key", c.APIKey)
	url := c.BaseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apod: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The error body may be HTML or plain text, so don't decode it;
		// keep a bounded prefix as the message.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4*apiErrMsgLimit))
		return nil, &model.APIError{
			Code:           resp.StatusCode,
			Msg:            truncateRunes(string(b), apiErrMsgLimit),
			ServiceVersion: "unknown",
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apod: read body: %w", err)
	}
	return decodeApodBody(body)
}

// truncateRunes cuts s to at most n characters, not bytes, so a
// multi-byte rune is never split.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
