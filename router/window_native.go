//go:build !(js && wasm)

package router

// defaultWindow gives native builds a window at "/" with an empty fragment.
func defaultWindow() Window {
	return NewMemoryWindow("/")
}
