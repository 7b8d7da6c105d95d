package router

import (
	"net/url"
	"strings"
	"sync"
)

// Location is the part of the browser's window.location the histories read.
type Location struct {
	Pathname string
	Search   string // includes the leading "?" when present
	Hash     string // includes the leading "#" when present
}

// Window is the slice of the browser window API used by the browser-backed
// histories. In WASM builds the default is the real window; native builds get
// a MemoryWindow.
type Window interface {
	Location() Location
	PushState(url string)
	ReplaceState(url string)

	// AddEventListener registers fn for a window event such as "hashchange"
	// or "popstate" and returns a func that removes it.
	AddEventListener(event string, fn func()) (remove func())
}

// MemoryWindow is an in-memory Window. It keeps a session history stack and
// dispatches "popstate" and "hashchange" the way a browser does when the user
// edits the URL or moves through history.
type MemoryWindow struct {
	mu        sync.Mutex
	entries   []Location
	pos       int
	nextID    int
	listeners map[string]map[int]func()
	order     map[string][]int
}

var _ Window = (*MemoryWindow)(nil)

// NewMemoryWindow creates a window whose initial URL is rawURL, a path with
// optional query and fragment such as "/index.html#/".
func NewMemoryWindow(rawURL string) *MemoryWindow {
	w := &MemoryWindow{
		listeners: make(map[string]map[int]func()),
		order:     make(map[string][]int),
	}
	w.entries = []Location{resolveLocation(Location{Pathname: "/"}, rawURL)}
	return w
}

// Location returns the current entry.
func (w *MemoryWindow) Location() Location {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entries[w.pos]
}

// PushState appends an entry, dropping any forward entries. No event fires.
func (w *MemoryWindow) PushState(rawURL string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := resolveLocation(w.entries[w.pos], rawURL)
	w.entries = append(w.entries[:w.pos+1], next)
	w.pos++
}

// ReplaceState overwrites the current entry. No event fires.
func (w *MemoryWindow) ReplaceState(rawURL string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries[w.pos] = resolveLocation(w.entries[w.pos], rawURL)
}

// AddEventListener implements Window.
func (w *MemoryWindow) AddEventListener(event string, fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	if w.listeners[event] == nil {
		w.listeners[event] = make(map[int]func())
	}
	w.listeners[event][id] = fn
	w.order[event] = append(w.order[event], id)

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners[event], id)
		ids := w.order[event]
		for i, v := range ids {
			if v == id {
				w.order[event] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
}

// Listeners reports how many listeners are registered for event.
func (w *MemoryWindow) Listeners(event string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners[event])
}

// Navigate simulates the user entering rawURL in the address bar of a page
// that is already loaded. Only a fragment change keeps the page, so like a
// browser it pushes an entry and fires popstate and hashchange.
func (w *MemoryWindow) Navigate(rawURL string) {
	w.mu.Lock()
	prev := w.entries[w.pos]
	next := resolveLocation(prev, rawURL)
	w.entries = append(w.entries[:w.pos+1], next)
	w.pos++
	w.mu.Unlock()

	w.dispatch("popstate")
	if prev.Hash != next.Hash {
		w.dispatch("hashchange")
	}
}

// Go moves delta entries through the session history, clamped to its
// bounds, and fires the events a browser would.
func (w *MemoryWindow) Go(delta int) {
	w.mu.Lock()
	prev := w.entries[w.pos]
	pos := w.pos + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(w.entries)-1 {
		pos = len(w.entries) - 1
	}
	moved := pos != w.pos
	w.pos = pos
	next := w.entries[w.pos]
	w.mu.Unlock()

	if !moved {
		return
	}
	w.dispatch("popstate")
	if prev.Hash != next.Hash {
		w.dispatch("hashchange")
	}
}

// Back is Go(-1).
func (w *MemoryWindow) Back() { w.Go(-1) }

func (w *MemoryWindow) dispatch(event string) {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.order[event]))
	for _, id := range w.order[event] {
		fns = append(fns, w.listeners[event][id])
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// resolveLocation resolves rawURL relative to cur, like the browser does for
// pushState arguments.
func resolveLocation(cur Location, rawURL string) Location {
	base := &url.URL{Path: cur.Pathname, RawQuery: strings.TrimPrefix(cur.Search, "?")}
	ref, err := url.Parse(rawURL)
	if err != nil {
		return cur
	}
	u := base.ResolveReference(ref)
	loc := Location{Pathname: u.EscapedPath()}
	if loc.Pathname == "" {
		loc.Pathname = "/"
	}
	if u.RawQuery != "" {
		loc.Search = "?" + u.RawQuery
	}
	if ref.Fragment != "" || ref.RawFragment != "" {
		loc.Hash = "#" + ref.EscapedFragment()
	}
	return loc
}
