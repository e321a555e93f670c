package sandbox

import (
	"fmt"

	"github.com/dop251/goja"
)

func describeCompileError(err error) string {
	return fmt.Sprintf("compilation failed: %s", err.Error())
}

func describeRuntimeError(err error) string {
	if interrupted, ok := err.(*goja.InterruptedError); ok {
		return fmt.Sprintf("%v", interrupted.Value())
	}
	if exc, ok := err.(*goja.Exception); ok {
		return exc.Value().String()
	}
	return err.Error()
}

func rejectionMessage(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "execution rejected with no reason"
	}
	return v.String()
}
