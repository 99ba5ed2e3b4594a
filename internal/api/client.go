package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"ssoma/internal/domain"
	"ssoma/internal/jsoncodec"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Options configures a single request. The zero value is a GET with no
// headers and no body.
type Options struct {
	Method  string
	Headers map[string]string
	// Body is sent as-is when it is a string, []byte or io.Reader and
	// JSON-encoded otherwise.
	Body any
}

type Client struct {
	Base string
	HTTP Doer
	Log  *slog.Logger
}

// New returns a client for the API rooted at base. Nil httpc and log fall
// back to http.DefaultClient and slog.Default.
func New(base string, httpc Doer, log *slog.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpc, Log: log}
}

var (
	_ domain.EmpresaAPI   = (*Client)(nil)
	_ domain.DocumentoAPI = (*Client)(nil)
)

// Do sends one request to url and returns the decoded JSON body: a
// map[string]any, []any, string, float64, bool or nil.
func (c *Client) Do(ctx context.Context, url string, opts Options) (any, error) {
	var out any
	if _, err := c.do(ctx, url, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DoInto is Do decoding into out.
func (c *Client) DoInto(ctx context.Context, url string, opts Options, out any) error {
	_, err := c.do(ctx, url, opts, out)
	return err
}

func (c *Client) do(ctx context.Context, url string, opts Options, out any) (int, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	method = strings.ToUpper(method)

	body, isJSON, err := encodeBody(opts.Body)
	if err != nil {
		err = fmt.Errorf("%s %s: encode body: %w", method, url, err)
		c.Log.Error("request failed", "method", method, "url", url, "error", err)
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, c.fail(domain.KindNetwork, method, url, err)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if isJSON && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, c.fail(domain.KindNetwork, method, url, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, c.fail(domain.KindNetwork, method, url, err)
	}
	if err := jsoncodec.Unmarshal(b, out); err != nil {
		return resp.StatusCode, c.fail(domain.KindDecode, method, url,
			fmt.Errorf("status %d, %s: %w", resp.StatusCode, contentType(resp), err))
	}
	c.Log.Debug("request done", "method", method, "url", url, "status", resp.StatusCode)
	return resp.StatusCode, nil
}

func (c *Client) fail(kind domain.ErrorKind, method, url string, cause error) error {
	err := &domain.RequestError{Kind: kind, Method: method, URL: url, Err: cause}
	c.Log.Error("request failed", "method", method, "url", url, "kind", kind.String(), "error", cause)
	return err
}

func encodeBody(v any) (io.Reader, bool, error) {
	switch b := v.(type) {
	case nil:
		return nil, false, nil
	case string:
		return strings.NewReader(b), false, nil
	case []byte:
		return bytes.NewReader(b), false, nil
	case io.Reader:
		return b, false, nil
	}
	data, err := jsoncodec.Marshal(v)
	if err != nil {
		return nil, false, err
	}
	return bytes.NewReader(data), true, nil
}

func contentType(resp *http.Response) string {
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "no content type"
}

// call sends a request to path under the base URL and unwraps the
// response envelope.
func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var env domain.Response[T]
	status, err := c.do(ctx, c.Base+path, Options{Method: method, Body: body}, &env)
	if err != nil {
		var zero T
		return zero, err
	}
	if !env.Success || status/100 != 2 {
		var zero T
		return zero, &domain.APIError{Status: status, Message: env.Message}
	}
	return env.Data, nil
}
