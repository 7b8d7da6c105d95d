package runtime

import "github.com/vcrobe/legcpu-web/vdom"

// Renderer is the set of runtime operations a component may call.
// Both the browser runtime and runtimetest.Renderer implement it.
type Renderer interface {
	// RenderChild renders a child component. key identifies the instance
	// across renders.
	RenderChild(key string, child Component) *vdom.VNode

	// ReRender requests a new render cycle.
	ReRender()

	// Navigate performs client-side navigation to path.
	Navigate(path string) error
}

// Navigator is implemented by routers that can be driven by Renderer.Navigate.
type Navigator interface {
	Push(path string) error
}
