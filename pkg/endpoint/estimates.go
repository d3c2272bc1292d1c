package endpoint

import (
	"net/http"

	"github.com/voyago/rides-go-sdk/internal/common/core"
	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

type estimatesKind int

const (
	estimatesPrice estimatesKind = iota
	estimatesTime
)

// Estimates is the closed set of estimate endpoints.
type Estimates struct {
	kind      estimatesKind
	start     payloads.Location
	end       payloads.Location
	productID string
}

// PriceEstimates fetches fare estimates between two locations.
func PriceEstimates(start, end payloads.Location) Estimates {
	return Estimates{kind: estimatesPrice, start: start, end: end}
}

// TimeEstimates fetches pickup ETAs at a location, optionally narrowed to a
// single product. An empty productID is simply not sent, per the query
// builder's empty-value rule.
func TimeEstimates(start payloads.Location, productID string) Estimates {
	return Estimates{kind: estimatesTime, start: start, productID: productID}
}

func (e Estimates) Method() string {
	return http.MethodGet
}

func (e Estimates) Path() string {
	builder := core.NewPathBuilder().Version(core.EstimatesVersion).Resource("estimates")
	switch e.kind {
	case estimatesTime:
		return builder.Action("time").Build()
	default:
		return builder.Action("price").Build()
	}
}

func (e Estimates) Query() []core.Param {
	switch e.kind {
	case estimatesPrice:
		return core.NewQuery(
			core.Param{Name: "start_latitude", Value: e.start.LatitudeString()},
			core.Param{Name: "start_longitude", Value: e.start.LongitudeString()},
			core.Param{Name: "end_latitude", Value: e.end.LatitudeString()},
			core.Param{Name: "end_longitude", Value: e.end.LongitudeString()},
		)
	case estimatesTime:
		return core.NewQuery(
			core.Param{Name: "start_latitude", Value: e.start.LatitudeString()},
			core.Param{Name: "start_longitude", Value: e.start.LongitudeString()},
			core.Param{Name: "product_id", Value: e.productID},
		)
	default:
		return nil
	}
}
