//go:build !wasm

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct{ to, from string }

func record(h History) *[]transition {
	var got []transition
	h.Listen(func(to, from string) { got = append(got, transition{to, from}) })
	return &got
}

// TestMode_String verifies the mode names.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "hash", HashMode.String())
	assert.Equal(t, "path", PathMode.String())
	assert.Equal(t, "memory", MemoryMode.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

// TestHashHistory_DefaultBaseUsesPagePath verifies the default base and fragment-only hrefs.
func TestHashHistory_DefaultBaseUsesPagePath(t *testing.T) {
	win := NewMemoryWindow("/index.html?debug=1")
	h := NewHashHistoryOn(win, "")

	assert.Equal(t, HashMode, h.Mode())
	assert.Equal(t, "/index.html?debug=1#", h.Base())
	assert.Equal(t, "/", h.Location(), "empty fragment is the root")
	assert.Equal(t, "#/", h.Href("/"))
	assert.Equal(t, "#/about", h.Href("about"))
}

// TestHashHistory_PushKeepsServerPath verifies that navigation only changes the fragment.
func TestHashHistory_PushKeepsServerPath(t *testing.T) {
	win := NewMemoryWindow("/index.html")
	h := NewHashHistoryOn(win, "")
	got := record(h)

	h.Push("/about")

	assert.Equal(t, "/about", h.Location())
	assert.Equal(t, Location{Pathname: "/index.html", Hash: "#/about"}, win.Location())
	assert.Empty(t, *got, "push does not notify listeners")

	h.Replace("/help")
	assert.Equal(t, "/help", h.Location())
	assert.Equal(t, "/index.html", win.Location().Pathname)
}

// TestHashHistory_FollowsFragmentChanges verifies listener calls for edited fragments and back/forward.
func TestHashHistory_FollowsFragmentChanges(t *testing.T) {
	win := NewMemoryWindow("/")
	h := NewHashHistoryOn(win, "")
	got := record(h)

	h.Push("/a")
	win.Navigate("#/b")
	win.Back()
	win.Go(1)

	assert.Equal(t, []transition{
		{to: "/b", from: "/a"},
		{to: "/a", from: "/b"},
		{to: "/b", from: "/a"},
	}, *got)
}

// TestHashHistory_CustomBase verifies a "#!" base.
func TestHashHistory_CustomBase(t *testing.T) {
	win := NewMemoryWindow("/app/")
	h := NewHashHistoryOn(win, "/app/#!")

	h.Push("/x")

	assert.Equal(t, "#!/x", h.Href("/x"))
	assert.Equal(t, Location{Pathname: "/app/", Hash: "#!/x"}, win.Location())
	assert.Equal(t, "/x", h.Location())
}

// TestHashHistory_BaseWithoutHash verifies that a base without '#' gets one.
func TestHashHistory_BaseWithoutHash(t *testing.T) {
	h := NewHashHistoryOn(NewMemoryWindow("/"), "/legcpu/")
	assert.Equal(t, "/legcpu/#", h.Base())
}

// TestHashHistory_DestroyDetaches verifies that Destroy removes the window listener.
func TestHashHistory_DestroyDetaches(t *testing.T) {
	win := NewMemoryWindow("/")
	h := NewHashHistoryOn(win, "")
	got := record(h)
	require.Equal(t, 1, win.Listeners("hashchange"))

	h.Destroy()
	h.Destroy()
	win.Navigate("#/after")

	assert.Equal(t, 0, win.Listeners("hashchange"))
	assert.Empty(t, *got)
}

// TestHashHistory_ListenStop verifies that a stopped listener is not called again.
func TestHashHistory_ListenStop(t *testing.T) {
	win := NewMemoryWindow("/")
	h := NewHashHistoryOn(win, "")
	var calls int
	stop := h.Listen(func(string, string) { calls++ })

	win.Navigate("#/one")
	stop()
	stop()
	win.Navigate("#/two")

	assert.Equal(t, 1, calls)
}

// TestWebHistory_StripsBase verifies base stripping and popstate handling.
func TestWebHistory_StripsBase(t *testing.T) {
	win := NewMemoryWindow("/app/")
	h := NewWebHistoryOn(win, "/app/")
	got := record(h)

	assert.Equal(t, PathMode, h.Mode())
	assert.Equal(t, "/app", h.Base())
	assert.Equal(t, "/", h.Location())
	assert.Equal(t, "/app/about", h.Href("/about"))

	h.Push("/about?tab=2")
	assert.Equal(t, "/app/about", win.Location().Pathname)
	assert.Equal(t, "/about?tab=2", h.Location())

	win.Back()
	assert.Equal(t, []transition{{to: "/", from: "/about?tab=2"}}, *got)

	h.Destroy()
	assert.Equal(t, 0, win.Listeners("popstate"))
}

// TestWebHistory_RootBase verifies a history served from the root.
func TestWebHistory_RootBase(t *testing.T) {
	win := NewMemoryWindow("/about")
	h := NewWebHistoryOn(win, "")

	assert.Equal(t, "", h.Base())
	assert.Equal(t, "/about", h.Location())

	h.Replace("/")
	assert.Equal(t, "/", win.Location().Pathname)
}

// TestMemoryHistory_Stack verifies push, go and replace on the entry stack.
func TestMemoryHistory_Stack(t *testing.T) {
	h := NewMemoryHistory("/base/")
	got := record(h)

	assert.Equal(t, MemoryMode, h.Mode())
	assert.Equal(t, "/base/x", h.Href("x"))

	h.Push("/a")
	h.Push("/b")
	h.Go(-1)
	assert.Equal(t, "/a", h.Location())

	h.Push("/c")
	assert.Equal(t, 3, h.Len(), "push drops forward entries")

	h.Go(-10)
	h.Go(10)
	h.Go(10)
	h.Replace("/d")

	assert.Equal(t, "/d", h.Location())
	assert.Equal(t, []transition{
		{to: "/a", from: "/b"},
		{to: "/", from: "/c"},
		{to: "/c", from: "/"},
	}, *got)

	h.Destroy()
	assert.Equal(t, "/", h.Location())
	assert.Equal(t, 1, h.Len())
}
