// Package remote is the client for the campus dining CRUD API. Every path is
// prefixed with the school identifier and every mutating call carries the
// shared admin key as the "key" query parameter.
package remote

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

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// ClientConfig configures a Client
type ClientConfig struct {
	BaseURL  string
	School   string
	AdminKey string
	Timeout  time.Duration
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Client issues requests against the remote API.
type Client struct {
	baseURL  string
	school   string
	adminKey string
	http     *http.Client
}

// NewClient creates a new Client
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		school:   cfg.School,
		adminKey: cfg.AdminKey,
		http:     httpClient,
	}
}

// HasAdminKey reports whether mutating calls can be issued
func (c *Client) HasAdminKey() bool {
	return c.adminKey != ""
}

// get fetches path and decodes the JSON response into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, false, nil, out)
}

// mutate sends an authenticated request. It refuses to send anything when no
// admin key is configured.
func (c *Client) mutate(ctx context.Context, method, path string, body, out interface{}) error {
	return c.do(ctx, method, path, true, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, mutating bool, body, out interface{}) error {
	fullPath := "/" + url.PathEscape(c.school) + path
	if mutating && c.adminKey == "" {
		return fmt.Errorf("%s %s: %w", method, fullPath, models.ErrAuth)
	}

	target := c.baseURL + fullPath
	if mutating {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + "key=" + url.QueryEscape(c.adminKey)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, fullPath, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, fullPath, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	fields := logrus.Fields{"method": method, "path": fullPath}
	log.WithFields(fields).Debug("Remote request")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.WithFields(fields).WithError(err).Warn("Remote backend unreachable")
		return &models.TransportError{Method: method, Path: fullPath, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		fields["status"] = resp.StatusCode
		log.WithFields(fields).Warn("Remote request failed")
		return &models.TransportError{Method: method, Path: fullPath, Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &models.TransportError{Method: method, Path: fullPath, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
