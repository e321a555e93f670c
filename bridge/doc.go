// Package bridge implements the egress channel between sandboxed agent code
// and the embedder's HTTP handler: it validates the request the agent wants
// to make, enforces a per-execution request count and a streamed
// response-size cap, and shapes the handler's response into the
// {status, headers, body} form the sandbox expects.
package bridge
