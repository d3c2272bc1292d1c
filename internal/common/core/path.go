package core

import "strings"

// PathBuilder helps construct API endpoint paths in a consistent way.
// It provides a fluent interface for building paths like "/v1/products"
// or "/v1/products/8a9e3b2c". Every rides path starts with the resource
// version segment, so the builder always emits a leading slash.
type PathBuilder struct {
	segments []string
}

func NewPathBuilder() *PathBuilder {
	return &PathBuilder{segments: []string{}}
}

// Version adds the resource version segment (e.g., "v1").
func (p *PathBuilder) Version(version string) *PathBuilder {
	p.segments = append(p.segments, version)
	return p
}

// Resource adds a resource type to the path (e.g., "products", "estimates").
func (p *PathBuilder) Resource(resource string) *PathBuilder {
	p.segments = append(p.segments, resource)
	return p
}

// ID adds a resource ID to the path. Product and request IDs are plain
// strings on the wire, so no stronger type is imposed here.
func (p *PathBuilder) ID(id string) *PathBuilder {
	p.segments = append(p.segments, id)
	return p
}

// Action adds an action to the path (e.g., "price", "time", "estimate").
func (p *PathBuilder) Action(action string) *PathBuilder {
	p.segments = append(p.segments, action)
	return p
}

// Build returns the constructed path with segments joined by "/" and a
// leading slash. An empty builder yields an empty string rather than "/".
func (p *PathBuilder) Build() string {
	if len(p.segments) == 0 {
		return ""
	}
	return "/" + strings.Join(p.segments, "/")
}
