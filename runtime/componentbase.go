package runtime

import (
	"errors"

	"github.com/vcrobe/legcpu-web/console"
)

// ErrNotMounted is returned when a component uses the renderer before the
// runtime attached one.
var ErrNotMounted = errors.New("component not mounted: renderer is nil")

// ComponentBase can be embedded by components to gain StateHasChanged and
// Navigate.
type ComponentBase struct {
	renderer Renderer
}

// SetRenderer is called by the runtime. User code should not call it.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// Renderer returns the attached renderer, or nil before mount.
func (b *ComponentBase) Renderer() Renderer {
	return b.renderer
}

// StateHasChanged asks the runtime to re-render after a state change.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Error("[ComponentBase.StateHasChanged]", ErrNotMounted.Error())
		return
	}
	b.renderer.ReRender()
}

// Navigate requests client-side navigation to path.
//
//	func (c *MyComponent) HandleClick() {
//	    if err := c.Navigate("/"); err != nil {
//	        console.Error("navigation failed:", err.Error())
//	    }
//	}
func (b *ComponentBase) Navigate(path string) error {
	if b.renderer == nil {
		return ErrNotMounted
	}
	return b.renderer.Navigate(path)
}
