package endpoint

import (
	"encoding/json"
	"net/http"

	"github.com/voyago/rides-go-sdk/internal/common/core"
	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

type requestsKind int

const (
	requestsEstimate requestsKind = iota
)

// Requests is the ride-request endpoint family. Only the estimate variant is
// implemented today; the accessors panic on any other kind so an incomplete
// future variant fails loudly instead of silently producing an empty path.
type Requests struct {
	kind       requestsKind
	parameters *payloads.RideParameters
}

// RideEstimate quotes a ride described by parameters without requesting it.
func RideEstimate(parameters *payloads.RideParameters) Requests {
	return Requests{kind: requestsEstimate, parameters: parameters}
}

func (r Requests) Method() string {
	switch r.kind {
	case requestsEstimate:
		return http.MethodPost
	default:
		panic("endpoint: unimplemented requests variant")
	}
}

func (r Requests) Path() string {
	switch r.kind {
	case requestsEstimate:
		return core.NewPathBuilder().
			Version(core.RequestsVersion).
			Resource("requests").
			Action("estimate").
			Build()
	default:
		panic("endpoint: unimplemented requests variant")
	}
}

func (r Requests) Query() []core.Param {
	return nil
}

func (r Requests) Body() ([]byte, error) {
	return json.Marshal(r.parameters)
}

func (r Requests) Headers() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}
