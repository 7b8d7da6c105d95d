//go:build !wasm

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResolveLocation verifies relative URL resolution for pushState arguments.
func TestResolveLocation(t *testing.T) {
	cur := Location{Pathname: "/app/index.html", Search: "?v=1", Hash: "#/old"}

	tests := []struct {
		raw  string
		want Location
	}{
		{"#/new", Location{Pathname: "/app/index.html", Search: "?v=1", Hash: "#/new"}},
		{"/other", Location{Pathname: "/other"}},
		{"page.html?x=2", Location{Pathname: "/app/page.html", Search: "?x=2"}},
		{"/app/index.html#/a?b=c", Location{Pathname: "/app/index.html", Hash: "#/a?b=c"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveLocation(cur, tt.raw), tt.raw)
	}
}

// TestMemoryWindow_EventsFollowBrowserRules verifies which calls fire popstate and hashchange.
func TestMemoryWindow_EventsFollowBrowserRules(t *testing.T) {
	w := NewMemoryWindow("/index.html")
	var events []string
	w.AddEventListener("popstate", func() { events = append(events, "popstate") })
	remove := w.AddEventListener("hashchange", func() { events = append(events, "hashchange") })

	w.PushState("#/a")
	w.ReplaceState("#/b")
	assert.Empty(t, events, "pushState and replaceState fire nothing")

	w.Navigate("#/c")
	assert.Equal(t, []string{"popstate", "hashchange"}, events)

	events = nil
	w.Go(-5)
	assert.Equal(t, []string{"popstate", "hashchange"}, events)
	assert.Equal(t, "", w.Location().Hash)

	events = nil
	w.Back()
	assert.Empty(t, events, "already at the first entry")

	remove()
	remove()
	w.Go(1)
	assert.Equal(t, []string{"popstate"}, events)
}
