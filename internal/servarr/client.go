// Package servarr is the REST client for Radarr, Sonarr and Lidarr. One
// Client talks to one server; Clients routes a network.Request to the
// client configured for its backend.
package servarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/route"
)

const defaultTimeout = 30 * time.Second

var (
	// ErrUnsupported is returned for operations the backend does not offer.
	ErrUnsupported = errors.New("operation not supported")
	// ErrNotConfigured is returned when a request targets a backend without
	// a client.
	ErrNotConfigured = errors.New("backend not configured")
)

// Config addresses one server. URI, when set, replaces host, port and ssl.
type Config struct {
	Name     string
	Host     string
	Port     int
	URI      string
	APIToken string
	SSL      bool
	Timeout  time.Duration
}

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Client wraps HTTP calls to one server.
type Client struct {
	backend    route.Backend
	flavor     flavor
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for backend.
func NewClient(backend route.Backend, cfg Config) *Client {
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	f := flavorFor(backend)
	return &Client{
		backend: backend,
		flavor:  f,
		baseURL: BaseURL(cfg, f.defaultPort) + f.prefix,
		apiKey:  cfg.APIToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the server root for cfg without the API prefix.
func BaseURL(cfg Config, defaultPort int) string {
	if uri := strings.TrimSpace(cfg.URI); uri != "" {
		return strings.TrimRight(uri, "/")
	}
	scheme := "http"
	if cfg.SSL {
		scheme = "https"
	}
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}
	return scheme + "://" + host + ":" + strconv.Itoa(port)
}

// Backend returns the server kind the client talks to.
func (c *Client) Backend() route.Backend {
	return c.backend
}

// URL returns the API root requests are sent to.
func (c *Client) URL() string {
	return c.baseURL
}

// do executes an HTTP request and returns the raw response body.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg, _ := extractAPIErrorBody(respBody)
		return respBody, resp.StatusCode, &APIError{Status: resp.StatusCode, Message: msg}
	}

	return respBody, resp.StatusCode, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	body, _, err := c.do(ctx, http.MethodGet, path, nil)
	return body, err
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	b, _, err := c.do(ctx, http.MethodPost, path, body)
	return b, err
}

func (c *Client) put(ctx context.Context, path string, body any) ([]byte, error) {
	b, _, err := c.do(ctx, http.MethodPut, path, body)
	return b, err
}

func (c *Client) del(ctx context.Context, path string, body any) error {
	_, _, err := c.do(ctx, http.MethodDelete, path, body)
	return err
}

// fetch GETs path and decodes the body into T.
func fetch[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	data, err := c.get(ctx, path)
	if err != nil {
		return out, err
	}
	return decode[T](data)
}

// fetchPage GETs a paged endpoint and returns its records.
func fetchPage[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	page, err := fetch[models.Page[T]](ctx, c, path)
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

func decode[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// buildQuery appends query params to a path, skipping empty values.
func buildQuery(path string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// extractAPIErrorBody pulls a message out of the servers' error payloads:
// an ErrorBody object or a list of validation failures.
func extractAPIErrorBody(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", false
	}

	var single models.ErrorBody
	if err := json.Unmarshal(trimmed, &single); err == nil {
		if msg := firstNonEmpty(single.Message, single.ErrorMessage); msg != "" {
			return msg, true
		}
	}

	var failures []models.ValidationFailure
	if err := json.Unmarshal(trimmed, &failures); err == nil && len(failures) > 0 {
		msgs := make([]string, 0, len(failures))
		for _, f := range failures {
			if f.ErrorMessage != "" {
				msgs = append(msgs, f.ErrorMessage)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; "), true
		}
	}

	if trimmed[0] != '{' && trimmed[0] != '[' {
		return string(trimmed), true
	}
	return "", false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
