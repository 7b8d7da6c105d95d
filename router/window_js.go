//go:build js && wasm

package router

import (
	"syscall/js"

	"github.com/vcrobe/legcpu-web/console"
)

// browserWindow binds Window to the global JS window object.
type browserWindow struct{}

func defaultWindow() Window {
	return browserWindow{}
}

func (browserWindow) Location() Location {
	loc := js.Global().Get("location")
	return Location{
		Pathname: loc.Get("pathname").String(),
		Search:   loc.Get("search").String(),
		Hash:     loc.Get("hash").String(),
	}
}

func (browserWindow) PushState(url string) {
	js.Global().Get("history").Call("pushState", js.Null(), "", url)
}

func (browserWindow) ReplaceState(url string) {
	js.Global().Get("history").Call("replaceState", js.Null(), "", url)
}

func (browserWindow) AddEventListener(event string, fn func()) func() {
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	js.Global().Call("addEventListener", event, listener)
	console.Log("[Window] listener registered for", event)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		js.Global().Call("removeEventListener", event, listener)
		listener.Release()
		console.Log("[Window] listener removed for", event)
	}
}
