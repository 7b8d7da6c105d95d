// Package runtimetest provides an in-memory Renderer for testing components
// without a browser.
package runtimetest

import (
	"github.com/vcrobe/legcpu-web/runtime"
	"github.com/vcrobe/legcpu-web/vdom"
)

var _ runtime.Renderer = (*Renderer)(nil)

// Renderer captures the VDOM produced by a root component. Navigation is
// forwarded to an optional runtime.Navigator and recorded.
type Renderer struct {
	component   runtime.Component
	navigator   runtime.Navigator
	currentVDOM *vdom.VNode
	renders     int
	navigations []string
}

// NewRenderer attaches a renderer to comp.
func NewRenderer(comp runtime.Component) *Renderer {
	r := &Renderer{component: comp}
	comp.SetRenderer(r)
	return r
}

// WithNavigator forwards Navigate calls to nav.
func (r *Renderer) WithNavigator(nav runtime.Navigator) *Renderer {
	r.navigator = nav
	return r
}

// RenderRoot performs a render of the root component and returns its VDOM.
func (r *Renderer) RenderRoot() *vdom.VNode {
	r.renders++
	r.currentVDOM = r.component.Render(r)
	return r.currentVDOM
}

// ReRender is called by StateHasChanged.
func (r *Renderer) ReRender() {
	r.RenderRoot()
}

// CurrentVDOM returns the most recent render output.
func (r *Renderer) CurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders reports how many render cycles have run.
func (r *Renderer) Renders() int {
	return r.renders
}

// RenderChild renders child in place; instances are not preserved.
func (r *Renderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	return child.Render(r)
}

// Navigate records path and forwards it to the navigator, if any.
func (r *Renderer) Navigate(path string) error {
	r.navigations = append(r.navigations, path)
	if r.navigator == nil {
		return nil
	}
	return r.navigator.Push(path)
}

// Navigations returns every path passed to Navigate, in order.
func (r *Renderer) Navigations() []string {
	return append([]string(nil), r.navigations...)
}
