//go:build !(js && wasm)

package console

// Native builds (tests, CLI tools) have no browser console. Output is
// discarded unless a writer is installed with SetOutput.

import (
	"fmt"
	"io"
	"sync"
)

var (
	mu  sync.Mutex
	out io.Writer = io.Discard
)

// SetOutput redirects console output for native builds.
// Passing nil restores the default (discard).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	out = w
}

// Log writes an informational line.
func Log(args ...any) {
	write("", args)
}

// Warn writes a line prefixed with WARN.
func Warn(args ...any) {
	write("WARN ", args)
}

// Error writes a line prefixed with ERROR.
func Error(args ...any) {
	write("ERROR ", args)
}

func write(level string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprint(out, level)
	fmt.Fprintln(out, args...)
}
