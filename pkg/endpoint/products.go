package endpoint

import (
	"net/http"

	"github.com/voyago/rides-go-sdk/internal/common/core"
	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

type productsKind int

const (
	productsAll productsKind = iota
	productsDetails
)

// Products is the closed set of product endpoints.
type Products struct {
	kind      productsKind
	location  payloads.Location
	productID string
}

// ProductsAll lists the products available at a location.
func ProductsAll(location payloads.Location) Products {
	return Products{kind: productsAll, location: location}
}

// ProductDetails fetches a single product by ID.
func ProductDetails(productID string) Products {
	return Products{kind: productsDetails, productID: productID}
}

func (p Products) Method() string {
	return http.MethodGet
}

func (p Products) Path() string {
	builder := core.NewPathBuilder().Version(core.ProductsVersion).Resource("products")
	switch p.kind {
	case productsDetails:
		return builder.ID(p.productID).Build()
	default:
		return builder.Build()
	}
}

func (p Products) Query() []core.Param {
	switch p.kind {
	case productsAll:
		return core.NewQuery(
			core.Param{Name: "latitude", Value: p.location.LatitudeString()},
			core.Param{Name: "longitude", Value: p.location.LongitudeString()},
		)
	default:
		return nil
	}
}
