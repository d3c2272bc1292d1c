package requests

import (
	"context"

	"go.uber.org/zap"

	"github.com/voyago/rides-go-sdk/internal/common/logger"
	"github.com/voyago/rides-go-sdk/pkg/client"
	"github.com/voyago/rides-go-sdk/pkg/endpoint"
	"github.com/voyago/rides-go-sdk/pkg/payloads"
	"github.com/voyago/rides-go-sdk/pkg/services/library"
)

type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.Requests {
	return &Service{client: client, log: log}
}

func (s *Service) Estimate(ctx context.Context, parameters *payloads.RideParameters) (*payloads.RideEstimateResult, error) {
	resp := s.client.Execute(ctx, endpoint.RideEstimate(parameters))
	if resp.Err != nil {
		s.log.Error("Failed to estimate ride",
			zap.String("productID", parameters.ProductID),
			zap.Error(resp.Err))
		return nil, resp.Err
	}

	return client.Decode[payloads.RideEstimateResult](s.log, resp.RawBody), nil
}
