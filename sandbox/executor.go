package sandbox

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/eventloop"
)

// Executor runs one agent program per Execute call inside a fresh,
// isolated context: its own goja.Runtime, its own event loop, its own
// memory and CPU bounds. Nothing survives between calls.
type Executor struct {
	cfg Config
}

// New builds an Executor bounded by cfg.
func New(cfg Config) *Executor {
	return &Executor{cfg: cfg.withDefaults()}
}

type outcome struct {
	value  any
	errMsg string
}

// Execute compiles code as "(<code>)()" and runs it against a fresh
// sandbox context populated with globals. The returned error is non-nil
// only when ctx is already done before a context could be created; every
// other failure mode (compile error, thrown exception, timeout, OOM, copy
// failure) is reported through ExecuteResult.Error instead.
func (e *Executor) Execute(ctx context.Context, code string, globals Globals) (ExecuteResult, error) {
	if err := ctx.Err(); err != nil {
		return ExecuteResult{}, err
	}

	loop := eventloop.NewEventLoop()
	loop.Start()
	defer loop.Stop()

	done := make(chan outcome, 1)
	vmCh := make(chan *goja.Runtime, 1)

	loop.RunOnLoop(func(vm *goja.Runtime) {
		vmCh <- vm
		vm.SetMemoryLimit(int64(e.cfg.MemoryMB) * 1024 * 1024)
		bindConsole(vm)

		if err := bindGlobals(ctx, vm, loop, globals); err != nil {
			done <- outcome{errMsg: err.Error()}
			return
		}

		prog, compileErr := goja.Compile("<agent>", "("+code+")()", true)
		if compileErr != nil {
			done <- outcome{errMsg: describeCompileError(compileErr)}
			return
		}

		val, runErr := vm.RunProgram(prog)
		if runErr != nil {
			done <- outcome{errMsg: describeRuntimeError(runErr)}
			return
		}

		awaitValue(vm, val, func(result goja.Value, rejected bool) {
			if rejected {
				done <- outcome{errMsg: rejectionMessage(result)}
				return
			}
			copied, copyErr := exportValue(result)
			if copyErr != nil {
				done <- outcome{errMsg: copyErr.Error()}
				return
			}
			done <- outcome{value: copied}
		})
	})

	timer := time.NewTimer(time.Duration(e.cfg.TimeoutMs) * time.Millisecond)
	defer timer.Stop()

	select {
	case o := <-done:
		if o.errMsg != "" {
			return ExecuteResult{Error: o.errMsg}, nil
		}
		return ExecuteResult{Result: o.value}, nil
	case <-timer.C:
		interrupt(vmCh, "execution timed out")
		<-done // let the interrupted run finish unwinding before teardown
		return ExecuteResult{Error: fmt.Sprintf("execution exceeded %dms CPU time budget", e.cfg.TimeoutMs)}, nil
	case <-ctx.Done():
		interrupt(vmCh, "execution cancelled")
		<-done
		return ExecuteResult{Error: fmt.Sprintf("execution cancelled: %v", ctx.Err())}, nil
	}
}

// interrupt stops a runaway synchronous script so its loop goroutine can
// unwind and the event loop can be torn down; it is a no-op if the
// runtime reference has not been handed off yet.
func interrupt(vmCh chan *goja.Runtime, reason string) {
	select {
	case vm := <-vmCh:
		vm.Interrupt(reason)
	default:
	}
}
