package gateway

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

	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/dmitrijs2005/bod/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"
	DefaultTimeout = 10 * time.Second
)

// Response is the envelope of a successful call.
type Response[T any] struct {
	StatusCode int
	Data       T
	RequestID  string
}

// HTTPGateway exposes one Collection per remote resource.
type HTTPGateway struct {
	Users    *Collection[models.User]
	Posts    *Collection[models.Post]
	Albums   *Collection[models.Album]
	Todos    *Collection[models.Todo]
	Comments *Collection[models.Comment]
	Photos   *Collection[models.Photo]

	c *client
}

// NewHTTPGateway builds a gateway for baseURL. A zero timeout selects
// DefaultTimeout. base may be nil to use http.DefaultTransport.
func NewHTTPGateway(baseURL string, timeout time.Duration, base http.RoundTripper, log logging.Logger) (*HTTPGateway, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.Discard()
	}

	c := &client{
		base: u,
		http: &http.Client{Timeout: timeout, Transport: newTransport(base, log)},
	}

	return &HTTPGateway{
		Users:    newCollection[models.User](c, "users"),
		Posts:    newCollection[models.Post](c, "posts"),
		Albums:   newCollection[models.Album](c, "albums"),
		Todos:    newCollection[models.Todo](c, "todos"),
		Comments: newCollection[models.Comment](c, "comments"),
		Photos:   newCollection[models.Photo](c, "photos"),
		c:        c,
	}, nil
}

// BaseURL returns the API root the gateway talks to.
func (g *HTTPGateway) BaseURL() string {
	return g.c.base.String()
}

// Timeout returns the per-request timeout.
func (g *HTTPGateway) Timeout() time.Duration {
	return g.c.http.Timeout
}

type client struct {
	base *url.URL
	http *http.Client
}

type errorBody struct {
	Message string `json:"message"`
}

// do performs one request. in is JSON-encoded when non-nil; out receives the
// decoded body when non-nil.
func (c *client) do(ctx context.Context, method, path string, query url.Values, in, out any) (int, string, error) {
	u := *c.base
	u.Path = u.Path + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, "", fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return 0, "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, reqID, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, reqID, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, URL: "/" + strings.TrimLeft(path, "/"), StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Message = eb.Message
		}
		return resp.StatusCode, reqID, apiErr
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, reqID, fmt.Errorf("%s %s: decode body: %w", method, path, err)
		}
	}
	return resp.StatusCode, reqID, nil
}

var errNoID = errors.New("record id must be positive")
