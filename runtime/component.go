package runtime

import "github.com/vcrobe/legcpu-web/vdom"

// Component is implemented by every renderable view unit.
// It has no build tags so components can be exercised by native tests.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	Render(r Renderer) *vdom.VNode

	// SetRenderer attaches the renderer so StateHasChanged and Navigate work.
	SetRenderer(r Renderer)
}

// ComponentFactory creates a component instance for a matched route.
// params holds the values captured by {name} segments of the route path.
type ComponentFactory func(params map[string]string) Component

// ComponentDef describes a route-addressable view unit. Routes refer to a
// *ComponentDef, so two routes point at the same view exactly when they hold
// the same pointer.
type ComponentDef struct {
	// Name is the human readable component name, e.g. "LegCpu".
	Name string

	// TypeID uniquely identifies the component type within the application.
	TypeID uint32

	Factory ComponentFactory
}

// New instantiates the component. A nil receiver or factory yields nil.
func (d *ComponentDef) New(params map[string]string) Component {
	if d == nil || d.Factory == nil {
		return nil
	}
	if params == nil {
		params = map[string]string{}
	}
	return d.Factory(params)
}

func (d *ComponentDef) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.Name
}
