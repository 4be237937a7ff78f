package client

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	// NotionVersionHeader carries the API version every request is pinned to.
	NotionVersionHeader = "Notion-Version"

	// NotionVersion is the Notion API version this client speaks.
	NotionVersion = "2022-06-28"
)

// Client performs record operations against a single Notion database.
//
// A Client is safe for concurrent use. It provides no coordination or rate
// limiting between concurrent callers.
type Client struct {
	token      string
	databaseID string
	headers    map[string]string
	options    *Options
	logger     RequestLogger
	restClient *resty.Client
	connected  bool
	mu         sync.Mutex
}

// New creates a client for the database identified by databaseID,
// authenticating with the integration token. No network activity takes
// place and neither value is validated; a bad token surfaces as a
// [*RequestFailedError] on the first call, or earlier via [Client.Connect].
func New(token, databaseID string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	c := &Client{
		token:      token,
		databaseID: databaseID,
		options:    options,
	}

	c.headers = c.buildHeaders()
	c.logger = newRedactingLogger(options.requestLogger, token)
	c.restClient = c.newRestClient()

	return c
}

// DatabaseID returns the id of the database the client operates on, or an
// empty string for a nil client.
func (c *Client) DatabaseID() string {
	if c == nil {
		return ""
	}

	return c.databaseID
}

// Connect validates the client configuration and verifies the token by
// fetching the integration's bot user. Calling Connect is optional; it only
// moves configuration and credential errors to a point of the caller's
// choosing. After one successful call, further calls are no-ops.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return errors.New("notion client is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	if strings.TrimSpace(c.token) == "" {
		return errors.New("token must be set")
	}

	if strings.TrimSpace(c.databaseID) == "" {
		return errors.New("database ID must be set")
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if err := c.do(ctx, "failed to verify Notion credentials", http.MethodGet, "/v1/users/me", nil, nil); err != nil {
		return err
	}

	c.connected = true

	return nil
}

func (c *Client) buildHeaders() map[string]string {
	headers := make(map[string]string, len(c.options.requestHeaders)+4)
	maps.Copy(headers, c.options.requestHeaders)

	headers["Authorization"] = "Bearer " + c.token
	headers["Content-Type"] = "application/json"
	headers["Accept"] = "application/json"
	headers[NotionVersionHeader] = NotionVersion

	return headers
}

// newRestClient builds the resty client. Keep-alives are disabled so that
// no connection stays open between calls.
func (c *Client) newRestClient() *resty.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	rc := resty.New().
		SetTransport(transport).
		SetBaseURL(c.options.baseURL).
		SetHeaders(c.headers).
		SetLogger(c.logger).
		SetTimeout(c.options.timeout).
		SetRetryCount(c.options.retryCount).
		SetRetryWaitTime(c.options.retryWaitTime).
		SetRetryMaxWaitTime(c.options.retryMaxWaitTime).
		AddRetryCondition(c.options.retryPolicy)

	rc.JSONMarshal = json.Marshal
	rc.JSONUnmarshal = json.Unmarshal

	return rc
}

// do sends one request and decodes a 200 response body into out, if out is
// non-nil. Any other status yields a *RequestFailedError.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	c.logger.Debugf("notion request %s %s", method, path)

	req := c.restClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Errorf("notion request %s %s failed: %v", method, path, err)
		return fmt.Errorf("%s: %s %s: %w", op, method, path, err)
	}

	if resp.StatusCode() != http.StatusOK {
		reqErr := newRequestFailedError(op, method, path, resp.StatusCode(), resp.Body())
		c.logger.Errorf("%v", reqErr)
		return reqErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: failed to decode response from %s %s: %w", op, method, path, err)
	}

	return nil
}
