package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"intake-engine/internal/model"
)

// HTTPClient talks JSON over REST to the CRM backend.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type backendError struct {
	Message string `json:"message"`
	Detail  string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var be backendError
		if json.Unmarshal(raw, &be) == nil {
			if be.Message != "" {
				return fmt.Errorf("backend %s %s: %s", method, path, be.Message)
			}
			if be.Detail != "" {
				return fmt.Errorf("backend %s %s: %s", method, path, be.Detail)
			}
		}
		return fmt.Errorf("backend %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) FetchClient(ctx context.Context, id string) (map[string]any, error) {
	var rec map[string]any
	if err := c.do(ctx, http.MethodGet, "/clients/"+id, nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *HTTPClient) CreateClient(ctx context.Context, payload map[string]any) (map[string]any, error) {
	var rec map[string]any
	if err := c.do(ctx, http.MethodPost, "/clients", payload, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *HTTPClient) UpdateClient(ctx context.Context, id string, update map[string]any) error {
	return c.do(ctx, http.MethodPut, "/clients/"+id, update, nil)
}

func (c *HTTPClient) UpdateSubsection(ctx context.Context, clientID string, person model.Person, sub Subsection, data map[string]any) error {
	path := fmt.Sprintf("/clients/%s/%s/%s", clientID, person, sub)
	return c.do(ctx, http.MethodPut, path, data, nil)
}

func (c *HTTPClient) CreateLiability(ctx context.Context, clientID string, row map[string]any) error {
	return c.do(ctx, http.MethodPost, "/clients/"+clientID+"/liabilities", row, nil)
}

var _ Service = (*HTTPClient)(nil)
