package estimates

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

func New(client *client.Client, log *logger.Logger) library.Estimates {
	return &Service{client: client, log: log}
}

func (s *Service) Price(ctx context.Context, start, end payloads.Location) ([]*payloads.PriceEstimate, error) {
	resp := s.client.Execute(ctx, endpoint.PriceEstimates(start, end))
	if resp.Err != nil {
		s.log.Error("Failed to get price estimates", zap.Error(resp.Err))
		return nil, resp.Err
	}

	prices := client.DecodeList[payloads.PriceEstimate](s.log, resp.RawBody, "prices")
	s.log.Debug("Retrieved price estimates", zap.Int("count", len(prices)))
	return prices, nil
}

func (s *Service) Time(ctx context.Context, start payloads.Location, productID string) ([]*payloads.TimeEstimate, error) {
	resp := s.client.Execute(ctx, endpoint.TimeEstimates(start, productID))
	if resp.Err != nil {
		s.log.Error("Failed to get time estimates", zap.String("productID", productID), zap.Error(resp.Err))
		return nil, resp.Err
	}

	times := client.DecodeList[payloads.TimeEstimate](s.log, resp.RawBody, "times")
	s.log.Debug("Retrieved time estimates", zap.Int("count", len(times)))
	return times, nil
}
