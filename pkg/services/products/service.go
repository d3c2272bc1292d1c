package products

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

func New(client *client.Client, log *logger.Logger) library.Products {
	return &Service{client: client, log: log}
}

func (s *Service) List(ctx context.Context, location payloads.Location) ([]*payloads.Product, error) {
	resp := s.client.Execute(ctx, endpoint.ProductsAll(location))
	if resp.Err != nil {
		s.log.Error("Failed to list products",
			zap.Float64("latitude", location.Latitude),
			zap.Float64("longitude", location.Longitude),
			zap.Error(resp.Err))
		return nil, resp.Err
	}

	products := client.DecodeList[payloads.Product](s.log, resp.RawBody, "products")
	s.log.Debug("Retrieved products", zap.Int("count", len(products)))
	return products, nil
}

func (s *Service) Get(ctx context.Context, productID string) (*payloads.Product, error) {
	resp := s.client.Execute(ctx, endpoint.ProductDetails(productID))
	if resp.Err != nil {
		s.log.Error("Failed to get product", zap.String("productID", productID), zap.Error(resp.Err))
		return nil, resp.Err
	}

	// An undecodable success body degrades to an absent product.
	return client.Decode[payloads.Product](s.log, resp.RawBody), nil
}
