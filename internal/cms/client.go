// Package cms talks to the hosted content store over its HTTP query and
// mutation APIs. Queries are GROQ strings; the store evaluates them.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned by every call when no project id is set.
	ErrNotConfigured = errors.New("cms client not configured")
	// ErrNotFound means the query evaluated to null.
	ErrNotFound = errors.New("cms document not found")
	// ErrTokenRequired is returned by Mutate without an API token.
	ErrTokenRequired = errors.New("cms api token required for mutations")
)

// Config holds the project coordinates.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// APIHost replaces https://{project}.api(cdn).sanity.io when set.
	APIHost string
	Timeout time.Duration
}

// APIError is a non-2xx answer from the store.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("cms returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("cms returned status %d: %s", e.StatusCode, e.Description)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is safe for concurrent use.
type Client struct {
	cfg  Config
	http httpDoer
}

// NewClient builds a client. A nil httpClient gets a default with cfg.Timeout.
func NewClient(cfg Config, httpClient httpDoer) *Client {
	cfg.ProjectID = strings.TrimSpace(cfg.ProjectID)
	if strings.TrimSpace(cfg.Dataset) == "" {
		cfg.Dataset = "production"
	}
	cfg.APIVersion = strings.TrimPrefix(strings.TrimSpace(cfg.APIVersion), "v")
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	cfg.APIHost = strings.TrimRight(strings.TrimSpace(cfg.APIHost), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Enabled reports whether a project id was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.ProjectID != ""
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

// Query evaluates groq with params and decodes the result into dst.
// Param values are JSON-encoded as the API expects ($slug="abc").
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, dst any) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	values := url.Values{}
	values.Set("query", groq)
	for key, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode param %s: %w", key, err)
		}
		values.Set("$"+strings.TrimPrefix(key, "$"), string(encoded))
	}

	// Authenticated reads bypass the CDN so drafts and fresh edits are visible.
	useCDN := c.cfg.UseCDN && c.cfg.Token == ""
	endpoint := c.baseURL(useCDN) + "/data/query/" + url.PathEscape(c.cfg.Dataset) + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build cms query request: %w", err)
	}

	var payload queryResponse
	if err := c.do(req, &payload); err != nil {
		return err
	}

	trimmed := bytes.TrimSpace(payload.Result)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrNotFound
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("decode cms result: %w", err)
	}
	return nil
}

// Mutation is one entry of the mutate API body.
type Mutation map[string]any

// Patch sets fields on an existing document.
func Patch(id string, set map[string]any) Mutation {
	return Mutation{"patch": map[string]any{"id": id, "set": set}}
}

// MutateResult mirrors the mutate API answer.
type MutateResult struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// Mutate applies mutations in a single transaction.
func (c *Client) Mutate(ctx context.Context, mutations ...Mutation) (MutateResult, error) {
	var result MutateResult
	if !c.Enabled() {
		return result, ErrNotConfigured
	}
	if strings.TrimSpace(c.cfg.Token) == "" {
		return result, ErrTokenRequired
	}

	body, err := json.Marshal(map[string]any{"mutations": mutations})
	if err != nil {
		return result, fmt.Errorf("encode mutations: %w", err)
	}

	endpoint := c.baseURL(false) + "/data/mutate/" + url.PathEscape(c.cfg.Dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return result, fmt.Errorf("build cms mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (c *Client) baseURL(useCDN bool) string {
	if c.cfg.APIHost != "" {
		return c.cfg.APIHost + "/v" + c.cfg.APIVersion
	}
	host := "api.sanity.io"
	if useCDN {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s", c.cfg.ProjectID, host, c.cfg.APIVersion)
}

func (c *Client) do(req *http.Request, dst any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "dfwhvac-site/1.0")
	if token := strings.TrimSpace(c.cfg.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var decoded errorResponse
		if json.Unmarshal(raw, &decoded) == nil {
			apiErr.Description = strings.TrimSpace(decoded.Error.Description)
			if apiErr.Description == "" {
				apiErr.Description = strings.TrimSpace(decoded.Message)
			}
		}
		if apiErr.Description == "" {
			apiErr.Description = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode cms response: %w", err)
	}
	return nil
}
