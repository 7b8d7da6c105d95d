package router

import (
	"strings"
	"sync"

	"github.com/vcrobe/legcpu-web/console"
)

// WebHistory uses clean URL paths through pushState and popstate.
type WebHistory struct {
	win       Window
	base      string
	listeners listenerSet

	mu     sync.Mutex
	last   string
	detach func()
}

var _ History = (*WebHistory)(nil)

// NewWebHistory creates a path-based history on the default window. base is
// the path the app is served under, e.g. "/app"; "" and "/" mean the root.
func NewWebHistory(base string) *WebHistory {
	return NewWebHistoryOn(defaultWindow(), base)
}

// NewWebHistoryOn creates a path-based history on w.
func NewWebHistoryOn(w Window, base string) *WebHistory {
	h := &WebHistory{win: w, base: normalizeBase(base)}
	h.last = h.Location()
	h.detach = w.AddEventListener("popstate", h.onPopState)
	return h
}

// Mode implements History.
func (h *WebHistory) Mode() Mode { return PathMode }

// Base implements History.
func (h *WebHistory) Base() string { return h.base }

// Location returns the pathname without the base, plus query and fragment.
func (h *WebHistory) Location() string {
	loc := h.win.Location()
	p := loc.Pathname
	if h.base != "" && (p == h.base || strings.HasPrefix(p, h.base+"/")) {
		p = p[len(h.base):]
	}
	return withLeadingSlash(p) + loc.Search + loc.Hash
}

// Href implements History.
func (h *WebHistory) Href(path string) string {
	return h.base + withLeadingSlash(path)
}

// Push implements History.
func (h *WebHistory) Push(path string) {
	h.win.PushState(h.Href(path))
	h.setLast(h.Location())
}

// Replace implements History.
func (h *WebHistory) Replace(path string) {
	h.win.ReplaceState(h.Href(path))
	h.setLast(h.Location())
}

// Listen implements History.
func (h *WebHistory) Listen(fn Listener) func() {
	return h.listeners.add(fn)
}

// Destroy implements History.
func (h *WebHistory) Destroy() {
	h.mu.Lock()
	detach := h.detach
	h.detach = nil
	h.mu.Unlock()

	if detach != nil {
		detach()
	}
	h.listeners.clear()
}

func (h *WebHistory) setLast(p string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = p
}

func (h *WebHistory) onPopState() {
	to := h.Location()

	h.mu.Lock()
	from := h.last
	h.last = to
	h.mu.Unlock()

	console.Log("[WebHistory] popstate", from, "->", to)
	h.listeners.notify(to, from)
}
