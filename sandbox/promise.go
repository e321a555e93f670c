package sandbox

import "github.com/dop251/goja"

// awaitValue settles outcome for val: if val is a Promise, it attaches a
// then/catch pair and calls onSettled once the promise resolves or
// rejects; otherwise it treats val as already-settled and calls onSettled
// immediately.
func awaitValue(vm *goja.Runtime, val goja.Value, onSettled func(result goja.Value, rejected bool)) {
	if val == nil || goja.IsUndefined(val) {
		onSettled(goja.Undefined(), false)
		return
	}

	obj := val.ToObject(vm)
	if obj == nil {
		onSettled(val, false)
		return
	}
	thenVal := obj.Get("then")
	thenFn, ok := goja.AssertFunction(thenVal)
	if !ok {
		// not a thenable: code did not return a promise, treat as settled.
		onSettled(val, false)
		return
	}

	onFulfilled := vm.ToValue(func(call goja.FunctionCall) goja.Value {
		onSettled(argOrUndefined(call), false)
		return goja.Undefined()
	})
	onRejected := vm.ToValue(func(call goja.FunctionCall) goja.Value {
		onSettled(argOrUndefined(call), true)
		return goja.Undefined()
	})

	if _, err := thenFn(val, onFulfilled, onRejected); err != nil {
		onSettled(vm.ToValue(err.Error()), true)
	}
}

func argOrUndefined(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) == 0 {
		return goja.Undefined()
	}
	return call.Arguments[0]
}
