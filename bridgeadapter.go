package codemode

import (
	"context"
	"errors"
	"fmt"

	"github.com/cnap-tech/codemode/bridge"
	"github.com/cnap-tech/codemode/sandbox"
)

// requestHostFunc adapts a bridge.Func into the sandbox.HostFunc shape the
// executor can bind under <namespace>.request. The sandbox always hands
// host functions a single object argument, already deep-copied out of
// the VM as plain Go values.
func requestHostFunc(fn bridge.Func) sandbox.HostFunc {
	return func(ctx context.Context, args []any) (any, error) {
		if len(args) == 0 {
			return nil, errors.New("request: missing argument")
		}
		raw, ok := args[0].(map[string]any)
		if !ok {
			return nil, errors.New("request: argument must be an object")
		}

		req := bridge.Request{Body: raw["body"]}
		if v, ok := raw["method"].(string); ok {
			req.Method = v
		}
		if v, ok := raw["path"].(string); ok {
			req.Path = v
		}
		if v, ok := raw["query"].(map[string]any); ok {
			req.Query = stringifyMap(v)
		}
		if v, ok := raw["headers"].(map[string]any); ok {
			req.Headers = stringifyMap(v)
		}

		resp, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"status":  resp.Status,
			"headers": resp.Headers,
			"body":    resp.Body,
		}, nil
	}
}

func stringifyMap(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
