package router

import (
	"strings"

	"github.com/vcrobe/legcpu-web/runtime"
)

// Route maps a URL path pattern to the view rendered when it is active.
// Path segments written as {name} capture one path segment into Params.
type Route struct {
	Path      string
	Component *runtime.ComponentDef
}

// Table is an ordered list of routes. When patterns overlap, the earlier
// route wins.
type Table []Route

// Clone returns a copy of t that shares no backing array with it.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Paths returns the route paths in table order.
func (t Table) Paths() []string {
	paths := make([]string, len(t))
	for i, r := range t {
		paths[i] = r.Path
	}
	return paths
}

// Validate checks every route and returns a *MultiValidationError listing
// all problems, or nil when the table is usable.
func (t Table) Validate() error {
	var errs []ValidationError
	seen := make(map[string]int, len(t))

	for i, r := range t {
		switch {
		case r.Path == "":
			errs = append(errs, ValidationError{Kind: KindEmptyPath, Index: i, Message: "route path is empty"})
			continue
		case !strings.HasPrefix(r.Path, "/"):
			errs = append(errs, ValidationError{Kind: KindRelativePath, Index: i, Path: r.Path, Message: `route path must start with "/"`})
			continue
		}

		if r.Component == nil {
			errs = append(errs, ValidationError{Kind: KindNilComponent, Index: i, Path: r.Path, Message: "route has no component"})
		}

		if msg := checkParams(r.Path); msg != "" {
			errs = append(errs, ValidationError{Kind: KindBadParam, Index: i, Path: r.Path, Message: msg})
		}

		key := patternKey(r.Path)
		if first, dup := seen[key]; dup {
			errs = append(errs, ValidationError{
				Kind:    KindDuplicatePath,
				Index:   i,
				Path:    r.Path,
				Message: "path already registered",
				Details: "conflicts with route " + t[first].Path,
			})
			continue
		}
		seen[key] = i
	}

	if len(errs) == 0 {
		return nil
	}
	return &MultiValidationError{Errors: errs}
}

// checkParams reports a malformed {param} segment or a repeated param name.
func checkParams(path string) string {
	names := make(map[string]bool)
	for _, seg := range splitPath(normalizePath(path)) {
		if !strings.ContainsAny(seg, "{}") {
			continue
		}
		if !isParam(seg) {
			return "malformed parameter segment " + seg
		}
		name := seg[1 : len(seg)-1]
		if strings.ContainsAny(name, "{}") {
			return "malformed parameter segment " + seg
		}
		if names[name] {
			return "parameter {" + name + "} appears more than once"
		}
		names[name] = true
	}
	return ""
}

// patternKey normalizes a pattern so that "/a/{x}" and "/a/{y}/" collide.
func patternKey(path string) string {
	segs := splitPath(normalizePath(path))
	for i, seg := range segs {
		if isParam(seg) {
			segs[i] = "{}"
		}
	}
	return "/" + strings.Join(segs, "/")
}
