package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MLClient is an HTTP client for the Python prediction sidecar. The backend
// relays prediction requests and ships it the sales dataset; it never
// reinterprets the model output. All calls go through a circuit breaker so a
// dead sidecar fails fast instead of tying up request handlers.
type MLClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewMLClient(baseURL string) *MLClient {
	return &MLClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cb:         NewCircuitBreaker(5, time.Minute),
	}
}

// CBState exposes the breaker state for the health endpoint.
func (c *MLClient) CBState() string { return c.cb.State() }

// Predecir relays a prediction request and returns the raw JSON answer.
func (c *MLClient) Predecir(ctx context.Context, payload interface{}) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.cb.Execute(func() error {
		raw, err := c.post(ctx, "/predicciones", payload)
		if err != nil {
			return err
		}
		out = raw
		return nil
	})
	return out, err
}

// EnviarDataset ships the exported sales dataset for retraining.
func (c *MLClient) EnviarDataset(ctx context.Context, payload interface{}) error {
	return c.cb.Execute(func() error {
		_, err := c.post(ctx, "/datasets/ventas", payload)
		return err
	})
}

func (c *MLClient) post(ctx context.Context, path string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ml: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ml: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ml: service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml: service returned %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("ml: decode response: %w", err)
	}
	return raw, nil
}
