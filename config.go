package codemode

import (
	"context"
	"regexp"

	"github.com/cnap-tech/codemode/bridge"
	"github.com/cnap-tech/codemode/sandbox"
)

// SpecProducer lazily produces the raw OpenAPI document on first search
// call. Use it instead of Config.Spec when the document must be fetched
// or decoded (for example via specprocessor.LoadSpec) rather than being
// available up front.
type SpecProducer func(ctx context.Context) (map[string]any, error)

// Config configures an Orchestrator. Spec or SpecProducer must be set;
// Request must be set. Every other field has a documented default.
type Config struct {
	// Spec is the raw OpenAPI document, already decoded. Mutually
	// exclusive with SpecProducer; if both are set, Spec wins.
	Spec map[string]any

	// SpecProducer lazily produces the document; it runs at most once,
	// on the first search call, and its result is cached for the life
	// of the Orchestrator.
	SpecProducer SpecProducer

	// Request is the host-side HTTP handler the request bridge calls
	// into. Required.
	Request bridge.Handler

	// Namespace is the global object name exposed inside execute. Must
	// match /^[A-Za-z_$][A-Za-z0-9_$]*$/ and must not collide with a
	// reserved name. Default "api".
	Namespace string

	// BaseURL is prepended to every bridge request path. Default
	// "http://localhost".
	BaseURL string

	// Sandbox bounds the executor's per-call memory and CPU budget.
	Sandbox sandbox.Config

	// Executor overrides the default executor construction; set this to
	// inject a pre-built or instrumented *sandbox.Executor.
	Executor *sandbox.Executor

	// MaxResponseTokens bounds a successful tool result's size, measured
	// as an estimated token count (characters / 4). Default 25000.
	MaxResponseTokens int

	// MaxRequests caps the number of bridge invocations within a single
	// execute call. Default bridge.DefaultMaxRequests.
	MaxRequests int

	// MaxResponseBytes caps a single bridge response body. Default
	// bridge.DefaultMaxResponseBytes.
	MaxResponseBytes int64

	// AllowedHeaders, when non-nil, switches the bridge from blocklist
	// to whitelist header filtering.
	AllowedHeaders []string

	// MaxRefDepth bounds $ref resolution depth. Default
	// specprocessor.DefaultMaxRefDepth.
	MaxRefDepth int

	// WallClockTimeoutMs bounds the total elapsed time of one Search or
	// Execute call, including time suspended on bridge I/O that the
	// sandbox's own CPU-time cap does not account for. Default: twice
	// Sandbox.TimeoutMs (or twice sandbox.DefaultTimeoutMs if that is
	// also unset).
	WallClockTimeoutMs int

	// SearchToolName and ExecuteToolName override the default tool
	// names "search" and "execute".
	SearchToolName  string
	ExecuteToolName string
}

const (
	defaultNamespace         = "api"
	defaultBaseURL           = "http://localhost"
	defaultMaxResponseTokens = 25000
	defaultSearchToolName    = "search"
	defaultExecuteToolName   = "execute"
)

var namespacePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var reservedNames = map[string]bool{
	"Object": true, "Array": true, "Promise": true, "Function": true,
	"String": true, "Number": true, "Boolean": true, "Symbol": true,
	"Map": true, "Set": true, "WeakMap": true, "WeakSet": true,
	"Date": true, "RegExp": true, "Error": true, "JSON": true,
	"Math": true, "Proxy": true, "Reflect": true, "globalThis": true,
	"undefined": true, "null": true, "NaN": true, "Infinity": true,
	"console": true, "spec": true, "global": true,
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = defaultNamespace
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.MaxResponseTokens == 0 {
		c.MaxResponseTokens = defaultMaxResponseTokens
	}
	if c.SearchToolName == "" {
		c.SearchToolName = defaultSearchToolName
	}
	if c.ExecuteToolName == "" {
		c.ExecuteToolName = defaultExecuteToolName
	}
	if c.WallClockTimeoutMs == 0 {
		sandboxTimeoutMs := c.Sandbox.TimeoutMs
		if sandboxTimeoutMs <= 0 {
			sandboxTimeoutMs = sandbox.DefaultTimeoutMs
		}
		c.WallClockTimeoutMs = 2 * sandboxTimeoutMs
	}
	return c
}

func validateNamespace(ns string) error {
	if !namespacePattern.MatchString(ns) {
		return &InvalidNamespaceError{Namespace: ns, Reason: "must be a valid JavaScript identifier"}
	}
	if reservedNames[ns] {
		return &InvalidNamespaceError{Namespace: ns, Reason: "conflicts with reserved name"}
	}
	return nil
}
