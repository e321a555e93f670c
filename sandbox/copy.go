package sandbox

import (
	"encoding/json"
	"fmt"

	"github.com/dop251/goja"
)

// injectValue deep-copies a plain Go value into vm by round-tripping it
// through JSON: marshal on the host side, then parse as a JS literal inside
// the runtime. The round trip guarantees the sandbox gets a brand new value
// with no aliasing back into host memory, and that it behaves like a
// regular JS object/array rather than a reflected Go map or slice.
func injectValue(vm *goja.Runtime, value any) (goja.Value, error) {
	if value == nil {
		return goja.Null(), nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("sandbox: copying value into sandbox: %w", err)
	}
	v, err := vm.RunString("(" + string(encoded) + ")")
	if err != nil {
		return nil, fmt.Errorf("sandbox: copying value into sandbox: %w", err)
	}
	return v, nil
}

// exportValue deep-copies a sandbox value back out to plain Go data by
// exporting it and round-tripping through JSON. A value that cannot survive
// that round trip (a function, a Symbol, a value with a cycle) is a
// programming error by definition and is reported as a copy failure.
func exportValue(v goja.Value) (any, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}
	exported := v.Export()
	encoded, err := json.Marshal(exported)
	if err != nil {
		return nil, fmt.Errorf("copy failure: value cannot be copied out of the sandbox: %w", err)
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("copy failure: value cannot be copied out of the sandbox: %w", err)
	}
	return out, nil
}

// exportArgs deep-copies a goja call's arguments into plain Go values, in
// the same order the sandbox code passed them.
func exportArgs(args []goja.Value) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		v, err := exportValue(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
