package bridge

import (
	"context"
	"io"
)

// Request is the shape of request an agent running inside the sandbox may
// ask the bridge to make.
type Request struct {
	Method  string
	Path    string
	Query   map[string]string
	Body    any
	Headers map[string]string
}

// Response is what the bridge hands back into the sandbox: Body is
// JSON-decoded when the response's content-type is application/json and
// decoding succeeds, otherwise it is the raw response text.
type Response struct {
	Status  int
	Headers map[string]string
	Body    any
}

// HTTPRequest is what the bridge passes to the embedder-supplied Handler:
// a fully composed URL and a fetch-shaped request init.
type HTTPRequest struct {
	Method  string
	Headers map[string]string
	Body    []byte
}

// HTTPResponse is what Handler must return. Body is read in chunks so the
// bridge can enforce MaxResponseBytes before the whole payload lands in
// host memory; an implementation that can only produce the full body at
// once may wrap it in io.NopCloser(bytes.NewReader(body)).
type HTTPResponse struct {
	Status  int
	Headers map[string][]string
	Body    io.ReadCloser
}

// Handler is the embedder-supplied HTTP entry point. It is the system's
// only means of egress; the bridge never opens a connection itself.
type Handler func(ctx context.Context, url string, init HTTPRequest) (HTTPResponse, error)
