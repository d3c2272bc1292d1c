// Package rides is the entry point of the Voyago rides SDK. It wires the
// configuration, logger and request executor together and exposes one
// service per API resource behind the library interfaces.
package rides

import (
	"github.com/subosito/gotenv"

	"github.com/voyago/rides-go-sdk/internal/common/logger"
	"github.com/voyago/rides-go-sdk/pkg/client"
	"github.com/voyago/rides-go-sdk/pkg/config"
	"github.com/voyago/rides-go-sdk/pkg/services/estimates"
	"github.com/voyago/rides-go-sdk/pkg/services/library"
	"github.com/voyago/rides-go-sdk/pkg/services/products"
	"github.com/voyago/rides-go-sdk/pkg/services/requests"
)

type Client struct {
	productsService  library.Products
	estimatesService library.Estimates
	requestsService  library.Requests
	log              *logger.Logger
}

// Load the .env file in the root of the project, to make it easier to try
// the SDK without having to set environment variables in the machine.
func init() {
	_ = gotenv.Load()
}

func New(cfg *config.Config) (library.Library, error) {
	log, err := logger.New(cfg.Development)
	if err != nil {
		return nil, err
	}

	executor := client.New(cfg, log)

	return &Client{
		productsService:  products.New(executor, log),
		estimatesService: estimates.New(executor, log),
		requestsService:  requests.New(executor, log),
		log:              log,
	}, nil
}

func (c *Client) Products() library.Products {
	return c.productsService
}

func (c *Client) Estimates() library.Estimates {
	return c.estimatesService
}

func (c *Client) Requests() library.Requests {
	return c.requestsService
}
