// Package api is the HTTP client for the P2H backend. It owns bearer
// token injection, response envelope parsing, failure classification,
// and the centralized forced-logout reaction to auth failures, so that
// no call site has to special-case session expiry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/me/p2h/pkg/model"
)

// DefaultTimeout matches the original client's 30s request budget.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP client for the P2H API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger

	// TokenSource returns the current bearer token, or "" when
	// anonymous. It is consulted fresh on every request so a token
	// written mid-session is honored on the next call.
	TokenSource func() string

	// OnAuthFailure runs when the backend rejects the token. It fires
	// once per failing token even when concurrent calls fail together.
	OnAuthFailure func()

	mu         sync.Mutex
	lastFailed *string // token of the last reported auth failure
}

// NewClient creates a P2H API client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Logger:     logger,
	}
}

// Bind returns a copy of the client tied to a specific token source
// and auth-failure hook. The web client binds one per request so each
// browser session carries its own token; transport, base URL, and
// logger are shared.
func (c *Client) Bind(tokenSource func() string, onAuthFailure func()) *Client {
	return &Client{
		BaseURL:       c.BaseURL,
		HTTPClient:    c.HTTPClient,
		Logger:        c.Logger,
		TokenSource:   tokenSource,
		OnAuthFailure: onAuthFailure,
	}
}

// token reads the current bearer token, if a source is installed.
func (c *Client) token() string {
	if c.TokenSource == nil {
		return ""
	}
	return c.TokenSource()
}

// do performs an HTTP request, parses the response envelope, and
// unmarshals the success payload into out (which may be nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.BaseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", "req_"+uuid.New().String()[:8])

	token := c.token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	c.Logger.Debug("api request", "method", method, "url", fullURL)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return c.classifyTransport(method, fullURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetworkUnreachable, Err: fmt.Errorf("read response: %w", err)}
	}

	c.Logger.Debug("api response",
		"method", method, "url", fullURL,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// A 401 on a request that carried no token is a credential
		// failure (wrong login), not a rejected session: the forced
		// logout hook only fires when a bearer token was presented.
		if token != "" {
			c.reportAuthFailure(token)
		}
		apiErr := &APIError{Kind: KindAuthFailure, StatusCode: resp.StatusCode}
		var env model.Envelope
		if err := json.Unmarshal(respBody, &env); err == nil {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	var env model.Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return &APIError{
			Kind:       KindUnknownFailure,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("parse response: %w", err),
		}
	}

	if env.Status != model.APIStatusSuccess {
		return &APIError{
			Kind:       KindApplicationError,
			StatusCode: resp.StatusCode,
			Message:    env.Message,
		}
	}

	if out != nil && len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, out); err != nil {
			return &APIError{
				Kind:       KindUnknownFailure,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("parse payload: %w", err),
			}
		}
	}
	return nil
}

// classifyTransport maps a transport error into Timeout or
// NetworkUnreachable.
func (c *Client) classifyTransport(method, url string, err error) error {
	kind := KindNetworkUnreachable

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	}

	c.Logger.Debug("api transport failure", "method", method, "url", url, "kind", kind)
	return &APIError{Kind: kind, Err: err}
}

// reportAuthFailure invokes the OnAuthFailure hook, deduplicated per
// failing token: when several in-flight calls carrying the same token
// all come back 401, the hook (clear session + redirect) runs once.
func (c *Client) reportAuthFailure(token string) {
	c.mu.Lock()
	if c.lastFailed != nil && *c.lastFailed == token {
		c.mu.Unlock()
		return
	}
	c.lastFailed = &token
	hook := c.OnAuthFailure
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// listQuery converts ListOptions into query parameters.
func listQuery(opts model.ListOptions) url.Values {
	opts = opts.Normalize()
	q := url.Values{}
	q.Set("page", fmt.Sprint(opts.Page))
	q.Set("page_size", fmt.Sprint(opts.PageSize))
	if opts.Kategori != "" {
		q.Set("kategori_pengguna", string(opts.Kategori))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	return q
}
