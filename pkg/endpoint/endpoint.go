// Package endpoint describes each logical rides API operation as a value:
// target host, method, path, query, and optionally headers and a body.
// Concrete endpoints implement Descriptor; the optional capabilities default
// to absent through the free helpers so most endpoints only declare the
// three required pieces.
package endpoint

import "github.com/voyago/rides-go-sdk/internal/common/core"

// Descriptor is the HTTP shape of one logical API operation.
type Descriptor interface {
	Method() string
	Path() string
	Query() []core.Param
}

// BodyProvider is implemented by endpoints that send a request body.
type BodyProvider interface {
	Body() ([]byte, error)
}

// HeaderProvider is implemented by endpoints that need extra headers.
// The Authorization header is owned by the executor and cannot be
// overridden from here.
type HeaderProvider interface {
	Headers() map[string]string
}

// BodyOf returns the descriptor's body, or nil when it has none.
func BodyOf(d Descriptor) ([]byte, error) {
	if b, ok := d.(BodyProvider); ok {
		return b.Body()
	}
	return nil, nil
}

// HeadersOf returns the descriptor's extra headers, or nil when it has none.
func HeadersOf(d Descriptor) map[string]string {
	if h, ok := d.(HeaderProvider); ok {
		return h.Headers()
	}
	return nil
}
