package router

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest is a serializable description of a router's configuration.
type Manifest struct {
	History string          `yaml:"history"`
	Base    string          `yaml:"base"`
	Routes  []RouteManifest `yaml:"routes"`
}

// RouteManifest describes one route.
type RouteManifest struct {
	Path      string `yaml:"path"`
	Component string `yaml:"component"`
	TypeID    uint32 `yaml:"type_id"`
	Href      string `yaml:"href"`
}

// Manifest describes the router's history and routes in table order.
func (r *Router) Manifest() Manifest {
	m := Manifest{
		History: r.history.Mode().String(),
		Base:    r.history.Base(),
		Routes:  make([]RouteManifest, 0, len(r.routes)),
	}
	for _, route := range r.routes {
		rm := RouteManifest{
			Path:      route.Path,
			Component: route.Component.String(),
			Href:      r.history.Href(route.Path),
		}
		if route.Component != nil {
			rm.TypeID = route.Component.TypeID
		}
		m.Routes = append(m.Routes, rm)
	}
	return m
}

// WriteYAML encodes m to w.
func (m Manifest) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return enc.Close()
}

// ReadManifest decodes a manifest written by WriteYAML.
func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}
