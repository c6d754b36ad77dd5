// Package client talks to the todo HTTP API.
package client

import (
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

	"github.com/idilsaglam/webtutorials/internal/model"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todo api: %d %s", e.Status, e.Detail)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

type Client struct {
	base string
	hc   *http.Client
}

// New returns a client for baseURL. A nil hc gets a client with a 10s timeout.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

type message struct {
	Message string `json:"message"`
}

func (c *Client) Root(ctx context.Context) (string, error) {
	var m message
	err := c.do(ctx, http.MethodGet, "/", nil, &m)
	return m.Message, err
}

func (c *Client) Create(ctx context.Context, task string) (model.Todo, error) {
	var t model.Todo
	err := c.do(ctx, http.MethodPost, "/todos", url.Values{"task": {task}}, &t)
	return t, err
}

func (c *Client) List(ctx context.Context) ([]model.Todo, error) {
	var out []model.Todo
	err := c.do(ctx, http.MethodGet, "/todos", nil, &out)
	return out, err
}

func (c *Client) Get(ctx context.Context, tid int64) (model.Todo, error) {
	var t model.Todo
	err := c.do(ctx, http.MethodGet, todoPath(tid), nil, &t)
	return t, err
}

func (c *Client) Update(ctx context.Context, tid int64, task string) (model.Todo, error) {
	var t model.Todo
	err := c.do(ctx, http.MethodPut, todoPath(tid), url.Values{"task": {task}}, &t)
	return t, err
}

func (c *Client) SetStatus(ctx context.Context, tid int64, done bool) (model.Todo, error) {
	var t model.Todo
	err := c.do(ctx, http.MethodPatch, todoPath(tid), url.Values{"is_done": {strconv.FormatBool(done)}}, &t)
	return t, err
}

func (c *Client) Delete(ctx context.Context, tid int64) (string, error) {
	var m message
	err := c.do(ctx, http.MethodDelete, todoPath(tid), nil, &m)
	return m.Message, err
}

func (c *Client) Reset(ctx context.Context) (string, error) {
	var m message
	err := c.do(ctx, http.MethodDelete, "/reset/todos", nil, &m)
	return m.Message, err
}

func todoPath(tid int64) string { return "/todos/" + strconv.FormatInt(tid, 10) }

func (c *Client) do(ctx context.Context, method, path string, q url.Values, out any) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &e) != nil || e.Detail == "" {
			e.Detail = strings.TrimSpace(string(body))
		}
		return &APIError{Status: resp.StatusCode, Detail: e.Detail}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
