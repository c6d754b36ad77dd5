package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Call is one request the caller sends.
type Call struct {
	Label  string
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Result is what came back for a Call.
type Result struct {
	Call   Call
	URL    string
	Status int
	Body   string
}

// Caller exercises the routes server over HTTP.
type Caller struct {
	base string
	hc   *http.Client
}

func NewCaller(baseURL string, hc *http.Client) *Caller {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Caller{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

// DemoCalls is the walkthrough sequence, one call per endpoint and method.
func DemoCalls() []Call {
	const (
		name  = "Sameer"
		age   = 30
		ids   = 1
		score = 92.5
	)
	payload := map[string]any{"name": name, "age": age}
	dyn := fmt.Sprintf("/api/dynamic_example/%d", ids)

	return []Call{
		{Label: "GET Home", Method: http.MethodGet, Path: "/"},
		{Label: "GET Example", Method: http.MethodGet, Path: "/api/get_example"},
		{Label: "GET Query", Method: http.MethodGet, Path: "/api/query_example", Query: url.Values{"name": {name}}},
		{Label: "GET Multi Query", Method: http.MethodGet, Path: "/api/multi_query_example",
			Query: url.Values{"name": {name}, "age": {fmt.Sprint(age)}}},
		{Label: "GET Default Query", Method: http.MethodGet, Path: "/api/default_query_example"},
		{Label: "GET Default Query", Method: http.MethodGet, Path: "/api/default_query_example",
			Query: url.Values{"name": {name}, "age": {fmt.Sprint(age)}}},
		{Label: "GET URL Example", Method: http.MethodGet, Path: fmt.Sprintf("/api/url_example/%s/%d", name, age)},
		{Label: "GET Other URL Example", Method: http.MethodGet,
			Path: fmt.Sprintf("/api/other_url_example/%d/%s", ids, FormatFloat(score))},
		{Label: "POST Example", Method: http.MethodPost, Path: "/api/post_example", Body: payload},
		{Label: "PUT Example", Method: http.MethodPut, Path: "/api/put_example", Body: payload},
		{Label: "DELETE Example", Method: http.MethodDelete, Path: "/api/delete_example", Body: payload},
		{Label: "PATCH Example", Method: http.MethodPatch, Path: "/api/patch_example", Body: payload},
		{Label: "GET Dynamic", Method: http.MethodGet, Path: dyn},
		{Label: "POST Dynamic", Method: http.MethodPost, Path: dyn, Body: payload},
		{Label: "PUT Dynamic", Method: http.MethodPut, Path: dyn, Body: payload},
		{Label: "DELETE Dynamic", Method: http.MethodDelete, Path: dyn},
		{Label: "PATCH Dynamic", Method: http.MethodPatch, Path: dyn, Body: payload},
	}
}

// Do sends a single call. Non-2xx statuses are returned in Result, not as errors.
func (c *Caller) Do(ctx context.Context, call Call) (Result, error) {
	u := c.base + call.Path
	if len(call.Query) > 0 {
		u += "?" + call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		b, err := json.Marshal(call.Body)
		if err != nil {
			return Result{}, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, call.Method, u, body)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	if call.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%s %s: %w", call.Method, call.Path, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}
	return Result{Call: call, URL: u, Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}, nil
}

// RunAll sends DemoCalls in order and prints one line per response.
// A transport error is printed and the walkthrough carries on.
func (c *Caller) RunAll(ctx context.Context, w io.Writer) error {
	failed := 0
	for _, call := range DemoCalls() {
		res, err := c.Do(ctx, call)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(w, "%s Error: %v\n", call.Label, err)
		case res.Status != http.StatusOK:
			failed++
			fmt.Fprintf(w, "%s Failed: Status code: %d\n", call.Label, res.Status)
		default:
			fmt.Fprintf(w, "%s: Response from '%s': %s\n", call.Label, res.URL, res.Body)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d calls failed", failed, len(DemoCalls()))
	}
	return nil
}
