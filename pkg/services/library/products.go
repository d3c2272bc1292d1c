package library

import (
	"context"

	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/products.go -package mock . Products

type Products interface {
	// List returns the products available at a location. Decode problems
	// degrade to an empty list, never an error.
	List(ctx context.Context, location payloads.Location) ([]*payloads.Product, error)
	Get(ctx context.Context, productID string) (*payloads.Product, error)
}
