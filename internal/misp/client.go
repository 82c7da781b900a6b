// Package misp provides a client for the MISP (Malware Information Sharing
// Platform) REST API. MISP owns all entity storage and business logic; this
// package only marshals calls to and from it.
package misp

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Config holds MISP connection configuration.
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	APIKeyEnv string        `yaml:"api_key_env"`
	VerifySSL bool          `yaml:"verify_ssl"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIKeyEnv: "MISP_API_KEY",
		VerifySSL: true,
		Timeout:   30 * time.Second,
	}
}

// Client is the single connection handle to the MISP server. It holds no
// mutable state between calls and is safe for concurrent use.
type Client struct {
	config     Config
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new MISP client. The API key is resolved from the
// environment at construction; credentials are never compiled in.
func NewClient(config Config) (*Client, error) {
	apiKey := os.Getenv(config.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("MISP API key not found in env var: %s", config.APIKeyEnv)
	}

	if config.BaseURL == "" {
		return nil, fmt.Errorf("MISP base URL is required")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !config.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		config: config,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
	}, nil
}

// HealthCheck verifies connectivity to MISP.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := c.newRequest(ctx, "GET", "/servers/getVersion", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("MISP health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("MISP returned status %d", resp.StatusCode)
	}

	return nil
}

// Do performs one MISP API call and returns the raw response body. Whatever
// a 2xx response carries is passed through untouched, including error-shaped
// bodies from MISP's own validation; callers depend on inspecting it.
// Transport failures, non-2xx statuses and exceeded deadlines come back as
// a *CallError.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := ErrKindRemote
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			kind = ErrKindTimeout
		}
		return nil, &CallError{Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CallError{Kind: ErrKindRemote, Err: fmt.Errorf("failed to read MISP response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &CallError{
			Kind:   ErrKindRemote,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("MISP returned %d: %s", resp.StatusCode, truncateBody(raw)),
		}
	}

	return json.RawMessage(raw), nil
}

// newRequest creates an authenticated MISP API request.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := strings.TrimSuffix(c.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func truncateBody(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
