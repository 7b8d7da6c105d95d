package router

import (
	"strings"
	"sync"
)

// Mode selects how the application location maps onto the browser URL.
type Mode int

const (
	// HashMode keeps the location in the URL fragment (#/about). The server
	// only ever sees the page path, so it needs no route configuration.
	HashMode Mode = iota

	// PathMode uses clean URLs (/about) through pushState. The server must
	// answer every application path with the app's index page.
	PathMode

	// MemoryMode keeps the location in memory, for native hosts and tests.
	MemoryMode
)

func (m Mode) String() string {
	switch m {
	case HashMode:
		return "hash"
	case PathMode:
		return "path"
	case MemoryMode:
		return "memory"
	default:
		return "unknown"
	}
}

// Listener is called when the location changes from outside the router,
// e.g. the back button or an edited URL fragment.
type Listener func(to, from string)

// History is the navigation strategy a Router is built with.
type History interface {
	Mode() Mode

	// Base is the prefix every Href starts with.
	Base() string

	// Location returns the current application path, e.g. "/" or "/a?b=c".
	Location() string

	// Href returns the URL an anchor should use for path.
	Href(path string) string

	// Push adds a history entry for path. Listeners are not called.
	Push(path string)

	// Replace overwrites the current entry with path. Listeners are not called.
	Replace(path string)

	Listen(fn Listener) (stop func())

	// Destroy removes every listener and releases browser callbacks.
	Destroy()
}

// listenerSet is shared by the history implementations.
type listenerSet struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]Listener
	order  []int
}

func (s *listenerSet) add(fn Listener) (stop func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]Listener)
	}
	id := s.nextID
	s.nextID++
	s.fns[id] = fn
	s.order = append(s.order, id)

	return func() { s.remove(id) }
}

func (s *listenerSet) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fns[id]; !ok {
		return
	}
	delete(s.fns, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *listenerSet) notify(to, from string) {
	s.mu.Lock()
	fns := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.fns[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(to, from)
	}
}

func (s *listenerSet) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fns = nil
	s.order = nil
}

// normalizeBase trims a trailing slash from a path base; "/" becomes "".
func normalizeBase(base string) string {
	if base == "" {
		return ""
	}
	if !strings.HasPrefix(base, "/") && !strings.HasPrefix(base, "#") {
		base = "/" + base
	}
	return strings.TrimSuffix(base, "/")
}

// withLeadingSlash returns p with a leading "/".
func withLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
