package sandbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_SimpleReturn(t *testing.T) {
	ex := New(Config{})
	res, err := ex.Execute(context.Background(), `async () => 42`, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Error)
	assert.Equal(t, float64(42), res.Result)
}

func TestExecutor_DataGlobalDeepCopied(t *testing.T) {
	ex := New(Config{})
	globals := Globals{"spec": map[string]any{"paths": map[string]any{"/pet": map[string]any{}}}}

	res, err := ex.Execute(context.Background(), `async () => Object.keys(spec.paths)`, globals)
	require.NoError(t, err)
	assert.Empty(t, res.Error)
	assert.Equal(t, []any{"/pet"}, res.Result)
}

func TestExecutor_ThrownError(t *testing.T) {
	ex := New(Config{})
	res, err := ex.Execute(context.Background(), `async () => { throw new Error("boom") }`, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Error, "boom")
}

func TestExecutor_HostFuncAsync(t *testing.T) {
	ex := New(Config{})
	called := make(chan struct{}, 1)

	globals := Globals{
		"ns": Namespace{
			"request": HostFunc(func(ctx context.Context, args []any) (any, error) {
				called <- struct{}{}
				return map[string]any{"status": float64(200)}, nil
			}),
		},
	}

	res, err := ex.Execute(context.Background(), `async () => { const r = await ns.request({path:"/ok"}); return r.status }`, globals)
	require.NoError(t, err)
	assert.Empty(t, res.Error)
	assert.Equal(t, float64(200), res.Result)

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("host func was never invoked")
	}
}

func TestExecutor_HostFuncError(t *testing.T) {
	ex := New(Config{})
	globals := Globals{
		"ns": Namespace{
			"request": HostFunc(func(ctx context.Context, args []any) (any, error) {
				return nil, errors.New("request limit exceeded")
			}),
		},
	}

	res, err := ex.Execute(context.Background(), `async () => { return await ns.request({}) }`, globals)
	require.NoError(t, err)
	assert.Contains(t, res.Error, "request limit exceeded")
}

func TestExecutor_Timeout(t *testing.T) {
	ex := New(Config{TimeoutMs: 50})
	res, err := ex.Execute(context.Background(), `async () => { while (true) {} }`, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Error, "exceeded")
}

func TestExecutor_CompileError(t *testing.T) {
	ex := New(Config{})
	res, err := ex.Execute(context.Background(), `this is not valid js (`, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Error, "compilation failed")
}

func TestExecutor_ConsoleIsNoop(t *testing.T) {
	ex := New(Config{})
	res, err := ex.Execute(context.Background(), `async () => { console.log("hi"); return "done" }`, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Error)
	assert.Equal(t, "done", res.Result)
}

func TestExecutor_FreshContextPerCall(t *testing.T) {
	ex := New(Config{})
	_, err := ex.Execute(context.Background(), `async () => { globalThis.leaked = "yes"; return 1 }`, nil)
	require.NoError(t, err)

	res, err := ex.Execute(context.Background(), `async () => typeof globalThis.leaked`, nil)
	require.NoError(t, err)
	assert.Equal(t, "undefined", res.Result)
}

func TestExecutor_CanceledContext(t *testing.T) {
	ex := New(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ex.Execute(ctx, `async () => 1`, nil)
	assert.Error(t, err)
}
