package router

import (
	"strings"
	"sync"

	"github.com/vcrobe/legcpu-web/console"
)

// HashHistory stores the application location in the URL fragment, so
// "/index.html#/about" is at "/about". Navigation never changes the path the
// server sees.
type HashHistory struct {
	win       Window
	base      string // e.g. "/index.html#"
	hashBase  string // base from the '#' on, e.g. "#"
	listeners listenerSet

	mu     sync.Mutex
	last   string
	detach func()
}

var _ History = (*HashHistory)(nil)

// NewHashHistory creates a hash history on the default window. An empty base
// uses the page's current path and query; a base without '#' gets one
// appended.
func NewHashHistory(base string) *HashHistory {
	return NewHashHistoryOn(defaultWindow(), base)
}

// NewHashHistoryOn creates a hash history on w.
func NewHashHistoryOn(w Window, base string) *HashHistory {
	if base == "" {
		loc := w.Location()
		base = loc.Pathname + loc.Search
	}
	if !strings.Contains(base, "#") {
		base += "#"
	}

	h := &HashHistory{
		win:      w,
		base:     base,
		hashBase: base[strings.IndexByte(base, '#'):],
	}
	h.last = h.Location()
	h.detach = w.AddEventListener("hashchange", h.onHashChange)
	return h
}

// Mode implements History.
func (h *HashHistory) Mode() Mode { return HashMode }

// Base implements History.
func (h *HashHistory) Base() string { return h.base }

// Location reads the application path from the fragment. An empty fragment
// is the root.
func (h *HashHistory) Location() string {
	hash := h.win.Location().Hash
	var p string
	if strings.HasPrefix(hash, h.hashBase) {
		p = hash[len(h.hashBase):]
	} else {
		p = strings.TrimPrefix(hash, "#")
	}
	if p == "" {
		return "/"
	}
	return withLeadingSlash(p)
}

// Href returns a fragment-only URL such as "#/about".
func (h *HashHistory) Href(path string) string {
	return h.hashBase + withLeadingSlash(path)
}

// Push implements History.
func (h *HashHistory) Push(path string) {
	h.win.PushState(h.base + withLeadingSlash(path))
	h.setLast(h.Location())
}

// Replace implements History.
func (h *HashHistory) Replace(path string) {
	h.win.ReplaceState(h.base + withLeadingSlash(path))
	h.setLast(h.Location())
}

// Listen implements History.
func (h *HashHistory) Listen(fn Listener) func() {
	return h.listeners.add(fn)
}

// Destroy implements History.
func (h *HashHistory) Destroy() {
	h.mu.Lock()
	detach := h.detach
	h.detach = nil
	h.mu.Unlock()

	if detach != nil {
		detach()
	}
	h.listeners.clear()
}

func (h *HashHistory) setLast(p string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = p
}

func (h *HashHistory) onHashChange() {
	to := h.Location()

	h.mu.Lock()
	from := h.last
	if to == from {
		h.mu.Unlock()
		return
	}
	h.last = to
	h.mu.Unlock()

	console.Log("[HashHistory] hashchange", from, "->", to)
	h.listeners.notify(to, from)
}
