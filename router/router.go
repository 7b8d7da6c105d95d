package router

import (
	"fmt"
	"sync"

	"github.com/vcrobe/legcpu-web/console"
	"github.com/vcrobe/legcpu-web/runtime"
	"github.com/vcrobe/legcpu-web/signals"
)

// Options configures a Router.
type Options struct {
	// History selects how locations map to browser URLs. Required.
	History History

	// Routes is copied by New; later changes to the slice have no effect.
	Routes Table
}

// Router resolves locations against an immutable route table and tracks the
// current match as the history changes.
type Router struct {
	history History
	routes  Table
	current *signals.Signal[Match]

	mu         sync.Mutex
	started    bool
	stopListen func()
}

var _ runtime.Navigator = (*Router)(nil)

// New validates opts.Routes and builds a router. Validation problems are
// reported as a *MultiValidationError.
func New(opts Options) (*Router, error) {
	if opts.History == nil {
		return nil, ErrNoHistory
	}
	if err := opts.Routes.Validate(); err != nil {
		return nil, fmt.Errorf("invalid route table: %w", err)
	}
	return &Router{
		history: opts.History,
		routes:  opts.Routes.Clone(),
		current: signals.NewSignal(Match{}),
	}, nil
}

// MustNew is like New but panics on error. Use it only for literal tables.
func MustNew(opts Options) *Router {
	r, err := New(opts)
	if err != nil {
		panic(err)
	}
	return r
}

// Routes returns a copy of the route table.
func (r *Router) Routes() Table {
	return r.routes.Clone()
}

// History returns the history the router was built with.
func (r *Router) History() History {
	return r.history
}

// Resolve matches a location such as "/" or "/a?b=c" without navigating.
func (r *Router) Resolve(location string) (Match, error) {
	t, err := parseLocation(location)
	if err != nil {
		return Match{}, fmt.Errorf("resolve %q: %w", location, err)
	}

	full := fullPath(t.path, t.query)
	m := Match{
		Path:     t.path,
		FullPath: full,
		Query:    t.query,
		Href:     r.history.Href(full),
	}

	route, params, ok := r.routes.find(t.segments)
	if !ok {
		return m, fmt.Errorf("%w: %s", ErrNoMatch, t.path)
	}
	m.Route = route
	m.Params = params
	return m, nil
}

// Start resolves the history's current location and begins following
// navigation that happens outside the router. Locations without a route
// produce an unmatched current Match. Calling Start twice is a no-op.
func (r *Router) Start() error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return nil
	}
	r.started = true
	r.stopListen = r.history.Listen(func(to, from string) {
		console.Log("[Router] external navigation", from, "->", to)
		r.follow(to)
	})
	r.mu.Unlock()

	initial := r.history.Location()
	console.Log("[Router.Start] initial location:", initial, "mode:", r.history.Mode().String())
	r.follow(initial)
	return nil
}

// Stop detaches the router from its history. Start may be called again.
func (r *Router) Stop() {
	r.mu.Lock()
	stop := r.stopListen
	r.stopListen = nil
	r.started = false
	r.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Push navigates to location, adding a history entry. Navigating to the
// current location is a no-op. An unknown location returns ErrNoMatch and
// leaves the history untouched.
func (r *Router) Push(location string) error {
	return r.navigate(location, false)
}

// Replace navigates to location, overwriting the current history entry.
func (r *Router) Replace(location string) error {
	return r.navigate(location, true)
}

func (r *Router) navigate(location string, replace bool) error {
	m, err := r.Resolve(location)
	if err != nil {
		console.Error("[Router.navigate]", err.Error())
		return err
	}

	prev := r.current.Get()
	if prev.Matched() && prev.FullPath == m.FullPath {
		return nil
	}

	r.mu.Lock()
	if replace {
		r.history.Replace(m.FullPath)
	} else {
		r.history.Push(m.FullPath)
	}
	r.mu.Unlock()

	console.Log("[Router.navigate]", prev.FullPath, "->", m.FullPath, "component:", m.Component().String())
	r.current.Set(m)
	return nil
}

// follow updates the current match for a location the history already shows.
func (r *Router) follow(location string) {
	if location == "" {
		location = "/"
	}
	m, err := r.Resolve(location)
	if err != nil {
		console.Warn("[Router.follow]", err.Error())
	}
	r.current.Set(m)
}

// Current returns the active match. Before Start or the first navigation it
// is the zero Match.
func (r *Router) Current() Match {
	return r.current.Get()
}

// OnChange registers fn to run after every navigation.
func (r *Router) OnChange(fn func(to, from Match)) (unsubscribe func()) {
	return r.current.Subscribe(func(prev, next Match) {
		fn(next, prev)
	})
}
