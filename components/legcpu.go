package components

import (
	"github.com/vcrobe/legcpu-web/runtime"
	"github.com/vcrobe/legcpu-web/vdom"
)

// LegCpuTypeID identifies the LegCpu component type.
const LegCpuTypeID uint32 = 100

// LegCpu is the emulator page. It renders the mount point the emulator UI
// attaches to.
type LegCpu struct {
	runtime.ComponentBase
}

// LegCpuView is the route-addressable definition of LegCpu.
var LegCpuView = &runtime.ComponentDef{
	Name:   "LegCpu",
	TypeID: LegCpuTypeID,
	Factory: func(params map[string]string) runtime.Component {
		return &LegCpu{}
	},
}

// Render implements runtime.Component.
func (c *LegCpu) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": "leg-cpu", "class": "leg-cpu"},
		vdom.Heading(1, "LEG CPU", nil),
	)
}
