package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync/atomic"
)

const (
	// DefaultMaxRequests is the per-execution request cap applied when
	// Options.MaxRequests is left at zero.
	DefaultMaxRequests = 50
	// DefaultMaxResponseBytes is the streamed response size cap applied
	// when Options.MaxResponseBytes is left at zero.
	DefaultMaxResponseBytes = 10 * 1024 * 1024

	readChunkSize = 32 * 1024
)

// Options configures one Func closure. Each execute call constructs a fresh
// Func, so MaxRequests bounds one call, not the handler's lifetime.
type Options struct {
	MaxRequests      int
	MaxResponseBytes int64
	AllowedHeaders   []string
}

func (o Options) withDefaults() Options {
	if o.MaxRequests <= 0 {
		o.MaxRequests = DefaultMaxRequests
	}
	if o.MaxResponseBytes <= 0 {
		o.MaxResponseBytes = DefaultMaxResponseBytes
	}
	return o
}

// Func is the single callable the bridge exposes into the sandbox.
type Func func(ctx context.Context, req Request) (Response, error)

// New builds a Func closure over handler and baseURL. The returned closure
// carries its own request counter, so every call to New gets a fresh
// budget of opts.MaxRequests requests.
func New(handler Handler, baseURL string, opts Options) Func {
	opts = opts.withDefaults()
	var count int64

	return func(ctx context.Context, req Request) (Response, error) {
		n := atomic.AddInt64(&count, 1)
		if n > int64(opts.MaxRequests) {
			return Response{}, errRequestLimit(opts.MaxRequests)
		}

		method, ok := normalizeMethod(req.Method)
		if !ok {
			return Response{}, errInvalidMethod(req.Method)
		}
		if err := validatePath(req.Path); err != nil {
			return Response{}, err
		}

		target, err := composeURL(baseURL, req.Path, req.Query)
		if err != nil {
			return Response{}, fmt.Errorf("bridge: composing request URL: %w", err)
		}

		headers := filterHeaders(req.Headers, opts.AllowedHeaders)

		var body []byte
		if req.Body != nil {
			encoded, err := json.Marshal(req.Body)
			if err != nil {
				return Response{}, fmt.Errorf("bridge: encoding request body: %w", err)
			}
			body = encoded
			if !hasContentType(headers) {
				headers["content-type"] = "application/json"
			}
		}

		httpResp, err := handler(ctx, target, HTTPRequest{Method: method, Headers: headers, Body: body})
		if err != nil {
			return Response{}, fmt.Errorf("bridge: request failed: %w", err)
		}
		if httpResp.Body != nil {
			defer httpResp.Body.Close()
		}

		text, err := readCapped(httpResp.Body, opts.MaxResponseBytes)
		if err != nil {
			return Response{}, err
		}

		respHeaders := flattenHeaders(httpResp.Headers)
		return Response{
			Status:  httpResp.Status,
			Headers: respHeaders,
			Body:    decodeBody(text, respHeaders),
		}, nil
	}
}

func hasContentType(headers map[string]string) bool {
	for name := range headers {
		if strings.EqualFold(name, "content-type") {
			return true
		}
	}
	return false
}

func composeURL(baseURL, path string, query map[string]string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimRight(u.Path, "/") + path

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// readCapped reads body in chunks, summing bytes as they arrive, and aborts
// the moment the running total would exceed max - the response is never
// buffered to completion first.
func readCapped(body io.Reader, max int64) (string, error) {
	if body == nil {
		return "", nil
	}

	var buf bytes.Buffer
	var total int64
	chunk := make([]byte, readChunkSize)

	for {
		n, err := body.Read(chunk)
		if n > 0 {
			total += int64(n)
			if total > max {
				return "", errResponseTooLarge(max)
			}
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("bridge: reading response body: %w", err)
		}
	}
	return buf.String(), nil
}

func flattenHeaders(headers map[string][]string) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if len(values) == 0 {
			continue
		}
		out[name] = values[0]
	}
	return out
}

func decodeBody(text string, headers map[string]string) any {
	if !isJSON(headers) {
		return text
	}
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}
	return parsed
}

func isJSON(headers map[string]string) bool {
	for name, value := range headers {
		if strings.EqualFold(name, "content-type") {
			return strings.Contains(strings.ToLower(value), "application/json")
		}
	}
	return false
}
