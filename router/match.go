package router

import (
	"net/url"
	"path"
	"strings"

	"github.com/vcrobe/legcpu-web/runtime"
)

// Match is the result of resolving a location against the route table.
type Match struct {
	// Path is the normalized, percent-encoded path that was resolved.
	Path string

	// FullPath is Path plus the encoded query, if any.
	FullPath string

	// Route is the matched route; its Component is nil when nothing matched.
	Route Route

	// Params holds the decoded values captured by {name} segments.
	Params map[string]string
	Query  url.Values

	// Href is the URL the history uses for FullPath, e.g. "#/" in hash mode.
	Href string
}

// Matched reports whether a route was found.
func (m Match) Matched() bool {
	return m.Route.Component != nil
}

// Component returns the matched view definition, or nil.
func (m Match) Component() *runtime.ComponentDef {
	return m.Route.Component
}

// target is a parsed location. path keeps percent-encoding so it can be
// written back to the history unchanged; segments are decoded for matching.
type target struct {
	path     string
	segments []string
	query    url.Values
}

// parseLocation splits a location string into its canonical escaped path,
// decoded segments and query. Any fragment is ignored. An encoded "/" (%2F)
// stays inside its segment.
func parseLocation(raw string) (target, error) {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	p, rawQuery, _ := strings.Cut(raw, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return target{}, err
	}

	t := target{query: query}
	escaped := make([]string, 0, strings.Count(p, "/"))
	for _, seg := range splitPath(normalizePath(p)) {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return target{}, err
		}
		t.segments = append(t.segments, decoded)
		escaped = append(escaped, escapeSegment(decoded))
	}
	t.path = "/" + strings.Join(escaped, "/")
	return t, nil
}

// escapeSegment encodes one decoded path segment. Decoded dot segments stay
// encoded so cleaning the path later cannot drop them.
func escapeSegment(seg string) string {
	switch seg {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return url.PathEscape(seg)
}

func fullPath(p string, query url.Values) string {
	if len(query) == 0 {
		return p
	}
	return p + "?" + query.Encode()
}

// normalizePath makes p absolute and cleans it. "/" is the root.
func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func isParam(seg string) bool {
	return len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

// matchPattern compares decoded path segments with a route pattern and
// returns the captured parameters.
func matchPattern(pattern string, pathParts []string) (map[string]string, bool) {
	patternParts := splitPath(normalizePath(pattern))
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	params := make(map[string]string)
	for i, part := range patternParts {
		if isParam(part) {
			params[part[1:len(part)-1]] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}

// find returns the first route in t matching the decoded segments.
func (t Table) find(segments []string) (Route, map[string]string, bool) {
	for _, r := range t {
		if params, ok := matchPattern(r.Path, segments); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}
