package router

import "sync"

// MemoryHistory keeps a session history stack in memory. It never touches a
// browser window.
type MemoryHistory struct {
	base      string
	listeners listenerSet

	mu      sync.Mutex
	entries []string
	pos     int
}

var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory creates a history whose single entry is "/".
func NewMemoryHistory(base string) *MemoryHistory {
	return &MemoryHistory{
		base:    normalizeBase(base),
		entries: []string{"/"},
	}
}

// Mode implements History.
func (h *MemoryHistory) Mode() Mode { return MemoryMode }

// Base implements History.
func (h *MemoryHistory) Base() string { return h.base }

// Location implements History.
func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.pos]
}

// Href implements History.
func (h *MemoryHistory) Href(path string) string {
	return h.base + withLeadingSlash(path)
}

// Push drops any forward entries and appends path.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.pos+1], withLeadingSlash(path))
	h.pos++
}

// Replace implements History.
func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.pos] = withLeadingSlash(path)
}

// Go moves delta entries, clamped to the stack, and notifies listeners when
// the location changed.
func (h *MemoryHistory) Go(delta int) {
	h.mu.Lock()
	from := h.entries[h.pos]
	pos := min(max(h.pos+delta, 0), len(h.entries)-1)
	h.pos = pos
	to := h.entries[pos]
	h.mu.Unlock()

	if to != from {
		h.listeners.notify(to, from)
	}
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Listen implements History.
func (h *MemoryHistory) Listen(fn Listener) func() {
	return h.listeners.add(fn)
}

// Destroy resets the stack to "/" and removes every listener.
func (h *MemoryHistory) Destroy() {
	h.mu.Lock()
	h.entries = []string{"/"}
	h.pos = 0
	h.mu.Unlock()
	h.listeners.clear()
}
