package library

import (
	"context"

	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/estimates.go -package mock . Estimates

type Estimates interface {
	Price(ctx context.Context, start, end payloads.Location) ([]*payloads.PriceEstimate, error)
	// Time returns pickup ETAs at a location. productID narrows the result
	// to one product; an empty value returns ETAs for every product.
	Time(ctx context.Context, start payloads.Location, productID string) ([]*payloads.TimeEstimate, error)
}
