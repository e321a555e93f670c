package codemode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cnap-tech/codemode/bridge"
	"github.com/cnap-tech/codemode/internal/errorutils"
	"github.com/cnap-tech/codemode/sandbox"
	"github.com/cnap-tech/codemode/specprocessor"
	"github.com/cnap-tech/codemode/toolsurface"
)

// Orchestrator ties the spec processor, the request bridge, and the
// sandbox executor together behind the two-tool surface an agent sees:
// search and execute. Build one with New and reuse it across any number
// of calls; call Dispose once done.
type Orchestrator struct {
	cfg       Config
	namespace string

	executorOnce sync.Once
	executor     *sandbox.Executor

	specMu      sync.Mutex
	specPending chan struct{}
	processed   *specprocessor.Processed
	specCtx     *specprocessor.Context
	specErr     error

	namesMu      sync.RWMutex
	searchName   string
	executeName  string
	disposedMu   sync.Mutex
	disposed     bool
}

// New validates cfg and constructs an Orchestrator. Configuration errors
// (missing spec source, missing request handler, invalid namespace)
// surface here, synchronously, rather than on first search/execute. Every
// validation failure is collected and reported together, rather than only
// the first one found.
func New(cfg Config) (*Orchestrator, error) {
	cfg = cfg.withDefaults()

	var specErr, requestErr, namespaceErr error
	if cfg.Spec == nil && cfg.SpecProducer == nil {
		specErr = ErrNilSpecProducer
	}
	if cfg.Request == nil {
		requestErr = ErrNilRequestHandler
	}
	namespaceErr = validateNamespace(cfg.Namespace)

	if err := errorutils.Join(specErr, requestErr, namespaceErr); err != nil {
		return nil, err
	}

	return &Orchestrator{
		cfg:         cfg,
		namespace:   cfg.Namespace,
		searchName:  cfg.SearchToolName,
		executeName: cfg.ExecuteToolName,
		executor:    cfg.Executor,
	}, nil
}

// Tools returns the current search and execute descriptors. The search
// descriptor is enriched with discovery context only once a spec has
// actually been processed by a prior search call.
func (o *Orchestrator) Tools() []toolsurface.Descriptor {
	o.namesMu.RLock()
	searchName, executeName := o.searchName, o.executeName
	o.namesMu.RUnlock()

	return []toolsurface.Descriptor{
		toolsurface.SearchDescriptor(searchName, o.cachedToolContext()),
		toolsurface.ExecuteDescriptor(executeName, o.namespace),
	}
}

func (o *Orchestrator) cachedToolContext() toolsurface.Context {
	o.specMu.Lock()
	defer o.specMu.Unlock()
	if o.specCtx == nil {
		return toolsurface.Context{}
	}
	return toolsurface.Context{Tags: o.specCtx.Tags, EndpointCount: o.specCtx.EndpointCount}
}

// SetToolNames renames the search and execute tools used by Tools and
// CallTool.
func (o *Orchestrator) SetToolNames(searchName, executeName string) {
	o.namesMu.Lock()
	defer o.namesMu.Unlock()
	if searchName != "" {
		o.searchName = searchName
	}
	if executeName != "" {
		o.executeName = executeName
	}
}

// CallTool routes to Search or Execute by tool name. An unknown name is
// reported as an error ToolResult, not a Go error, per the propagation
// policy: normal tool-call failures never escape as exceptions.
func (o *Orchestrator) CallTool(ctx context.Context, name, code string) (ToolResult, error) {
	o.namesMu.RLock()
	searchName, executeName := o.searchName, o.executeName
	o.namesMu.RUnlock()

	switch name {
	case searchName:
		return o.Search(ctx, code)
	case executeName:
		return o.Execute(ctx, code)
	default:
		return errorResult(fmt.Sprintf("unknown tool %q", name)), nil
	}
}

// Search runs code (an async zero-argument function source) with the
// processed, fully dereferenced spec bound to the global spec.
func (o *Orchestrator) Search(ctx context.Context, code string) (ToolResult, error) {
	if o.isDisposed() {
		return ToolResult{}, errOrchestratorDisposed
	}

	processed, _, err := o.ensureSpec(ctx)
	if err != nil {
		return ToolResult{}, fmt.Errorf("codemode: processing spec: %w", err)
	}

	globals := sandbox.Globals{"spec": processed.ToJSON()}
	return o.run(ctx, code, globals)
}

// Execute runs code (an async zero-argument function source) with a
// freshly built request bridge bound under the configured namespace, so
// every execute call starts with a request counter of zero.
func (o *Orchestrator) Execute(ctx context.Context, code string) (ToolResult, error) {
	if o.isDisposed() {
		return ToolResult{}, errOrchestratorDisposed
	}

	bridgeFn := bridge.New(o.cfg.Request, o.cfg.BaseURL, bridge.Options{
		MaxRequests:      o.cfg.MaxRequests,
		MaxResponseBytes: o.cfg.MaxResponseBytes,
		AllowedHeaders:   o.cfg.AllowedHeaders,
	})

	globals := sandbox.Globals{
		o.namespace: sandbox.Namespace{"request": requestHostFunc(bridgeFn)},
	}
	return o.run(ctx, code, globals)
}

// run enforces the wall-clock cap around one sandbox call: the executor's
// own timeoutMs only bounds synchronous CPU time, so a call stuck
// suspended on bridge I/O still needs an external tripwire.
func (o *Orchestrator) run(ctx context.Context, code string, globals sandbox.Globals) (ToolResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.cfg.WallClockTimeoutMs)*time.Millisecond)
	defer cancel()

	result, err := o.getExecutor().Execute(ctx, code, globals)
	if err != nil {
		return ToolResult{}, err
	}
	if result.Error != "" {
		return errorResult(result.Error), nil
	}
	return successResult(result.Result, o.cfg.MaxResponseTokens), nil
}

// Dispose marks the Orchestrator as disposed; every later Search or
// Execute call returns an error. The executor holds no resources between
// calls, so there is nothing further to release.
func (o *Orchestrator) Dispose() error {
	o.disposedMu.Lock()
	defer o.disposedMu.Unlock()
	o.disposed = true
	return nil
}

func (o *Orchestrator) isDisposed() bool {
	o.disposedMu.Lock()
	defer o.disposedMu.Unlock()
	return o.disposed
}

func (o *Orchestrator) getExecutor() *sandbox.Executor {
	o.executorOnce.Do(func() {
		if o.executor == nil {
			o.executor = sandbox.New(o.cfg.Sandbox)
		}
	})
	return o.executor
}

// ensureSpec builds the processed spec on the first call and caches it
// for every subsequent call. Concurrent first calls share a single
// in-flight build rather than racing to process the document twice.
func (o *Orchestrator) ensureSpec(ctx context.Context) (*specprocessor.Processed, *specprocessor.Context, error) {
	o.specMu.Lock()
	if o.processed != nil || o.specErr != nil {
		p, c, err := o.processed, o.specCtx, o.specErr
		o.specMu.Unlock()
		return p, c, err
	}
	if o.specPending != nil {
		ch := o.specPending
		o.specMu.Unlock()
		<-ch
		return o.ensureSpec(ctx)
	}
	ch := make(chan struct{})
	o.specPending = ch
	o.specMu.Unlock()

	doc, err := o.loadDoc(ctx)
	var processed *specprocessor.Processed
	var specCtx *specprocessor.Context
	if err == nil {
		processed, err = specprocessor.ProcessSpec(doc, o.cfg.MaxRefDepth)
	}
	if err == nil {
		specCtx = specprocessor.BuildContext(doc, processed)
	}

	o.specMu.Lock()
	o.processed, o.specCtx, o.specErr = processed, specCtx, err
	o.specPending = nil
	o.specMu.Unlock()
	close(ch)

	return processed, specCtx, err
}

func (o *Orchestrator) loadDoc(ctx context.Context) (map[string]any, error) {
	if o.cfg.Spec != nil {
		return o.cfg.Spec, nil
	}
	return o.cfg.SpecProducer(ctx)
}
