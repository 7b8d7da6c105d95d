//go:build !wasm

package runtime_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/legcpu-web/runtime"
	"github.com/vcrobe/legcpu-web/runtime/runtimetest"
	"github.com/vcrobe/legcpu-web/vdom"
)

type counter struct {
	runtime.ComponentBase
	Count int
}

func (c *counter) Increment() {
	c.Count++
	c.StateHasChanged()
}

func (c *counter) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph("count", map[string]any{"data-count": c.Count})
}

type navigatorFunc func(string) error

func (f navigatorFunc) Push(path string) error { return f(path) }

// TestComponentDef_NewPassesParams verifies that route params reach the factory.
func TestComponentDef_NewPassesParams(t *testing.T) {
	var got map[string]string
	def := &runtime.ComponentDef{
		Name:   "Counter",
		TypeID: 1,
		Factory: func(params map[string]string) runtime.Component {
			got = params
			return &counter{}
		},
	}

	require.NotNil(t, def.New(nil))
	assert.NotNil(t, got, "nil params are replaced with an empty map")

	def.New(map[string]string{"id": "7"})
	assert.Equal(t, "7", got["id"])
	assert.Equal(t, "Counter", def.String())
}

// TestComponentDef_NilSafe verifies that nil definitions and factories yield nil.
func TestComponentDef_NilSafe(t *testing.T) {
	var def *runtime.ComponentDef
	assert.Nil(t, def.New(nil))
	assert.Equal(t, "<nil>", def.String())
	assert.Nil(t, (&runtime.ComponentDef{Name: "Empty"}).New(nil))
}

// TestComponentBase_StateHasChangedReRenders verifies that StateHasChanged triggers a new render cycle.
func TestComponentBase_StateHasChangedReRenders(t *testing.T) {
	c := &counter{}
	r := runtimetest.NewRenderer(c)
	r.RenderRoot()

	c.Increment()

	assert.Equal(t, 2, r.Renders())
	assert.Equal(t, 1, r.CurrentVDOM().Attr("data-count"))
}

// TestComponentBase_NavigateBeforeMount verifies that an unmounted component cannot navigate.
func TestComponentBase_NavigateBeforeMount(t *testing.T) {
	c := &counter{}
	assert.ErrorIs(t, c.Navigate("/"), runtime.ErrNotMounted)
	c.StateHasChanged()
	assert.Nil(t, c.Renderer())
}

// TestComponentBase_NavigateForwardsToNavigator verifies that Navigate reaches the router through the renderer.
func TestComponentBase_NavigateForwardsToNavigator(t *testing.T) {
	var pushed []string
	boom := errors.New("boom")
	c := &counter{}
	r := runtimetest.NewRenderer(c).WithNavigator(navigatorFunc(func(p string) error {
		pushed = append(pushed, p)
		if p == "/bad" {
			return boom
		}
		return nil
	}))

	require.NoError(t, c.Navigate("/"))
	assert.ErrorIs(t, c.Navigate("/bad"), boom)
	assert.Equal(t, []string{"/", "/bad"}, pushed)
	assert.Equal(t, []string{"/", "/bad"}, r.Navigations())
}
