package library

import (
	"context"

	"github.com/voyago/rides-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/requests.go -package mock . Requests

type Requests interface {
	// Estimate quotes the ride described by parameters without creating a
	// ride request.
	Estimate(ctx context.Context, parameters *payloads.RideParameters) (*payloads.RideEstimateResult, error)
}
