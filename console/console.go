//go:build js && wasm

package console

import (
	"io"
	"syscall/js"
)

// Log writes to the browser's console.log.
func Log(args ...any) {
	call("log", args)
}

// Warn writes to the browser's console.warn.
func Warn(args ...any) {
	call("warn", args)
}

// Error writes to the browser's console.error.
func Error(args ...any) {
	call("error", args)
}

// SetOutput is a no-op in the browser; output always goes to the JS console.
func SetOutput(w io.Writer) {}

func call(method string, args []any) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return
	}
	console.Call(method, args...)
}
