package sandbox

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/eventloop"
)

// bindGlobals injects every entry of globals into vm, dispatching on the
// three shapes a global may take: a HostFunc becomes an async callable, a
// Namespace with at least one HostFunc becomes an object whose function
// entries are async callables and whose other entries are deep-copied
// data, and anything else is deep-copied in as inert data.
func bindGlobals(ctx context.Context, vm *goja.Runtime, loop *eventloop.EventLoop, globals Globals) error {
	for name, value := range globals {
		var (
			v   goja.Value
			err error
		)
		switch val := value.(type) {
		case HostFunc:
			v = bindHostFunc(ctx, vm, loop, val)
		case Namespace:
			v, err = bindNamespace(ctx, vm, loop, val)
		default:
			v, err = injectValue(vm, value)
		}
		if err != nil {
			return fmt.Errorf("sandbox: binding global %q: %w", name, err)
		}
		vm.Set(name, v)
	}
	return nil
}

func bindNamespace(ctx context.Context, vm *goja.Runtime, loop *eventloop.EventLoop, ns Namespace) (goja.Value, error) {
	obj := vm.NewObject()
	for key, value := range ns {
		if fn, ok := value.(HostFunc); ok {
			if err := obj.Set(key, bindHostFunc(ctx, vm, loop, fn)); err != nil {
				return nil, err
			}
			continue
		}
		v, err := injectValue(vm, value)
		if err != nil {
			return nil, err
		}
		if err := obj.Set(key, v); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// bindHostFunc exposes fn as a callable that always returns a Promise, even
// though fn itself may settle synchronously; the real work runs on its own
// goroutine so the host's HTTP round trips never block the loop's
// dispatcher goroutine.
func bindHostFunc(ctx context.Context, vm *goja.Runtime, loop *eventloop.EventLoop, fn HostFunc) goja.Value {
	return vm.ToValue(func(call goja.FunctionCall) goja.Value {
		promise, resolve, reject := vm.NewPromise()

		args, err := exportArgs(call.Arguments)
		if err != nil {
			reject(vm.ToValue(err.Error()))
			return vm.ToValue(promise)
		}

		go func() {
			result, callErr := fn(ctx, args)
			loop.RunOnLoop(func(vm *goja.Runtime) {
				if callErr != nil {
					reject(vm.ToValue(callErr.Error()))
					return
				}
				copied, copyErr := injectValue(vm, result)
				if copyErr != nil {
					reject(vm.ToValue(copyErr.Error()))
					return
				}
				resolve(copied)
			})
		}()

		return vm.ToValue(promise)
	})
}

// bindConsole makes console.log/warn/error no-ops: a sandbox-accessible
// logger that accumulates into host memory would be a bypass of the
// memory cap.
func bindConsole(vm *goja.Runtime) {
	noop := func(goja.FunctionCall) goja.Value { return goja.Undefined() }
	console := vm.NewObject()
	console.Set("log", noop)
	console.Set("warn", noop)
	console.Set("error", noop)
	vm.Set("console", console)
}
