package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/rides-go-sdk/internal/common/logger"
	"github.com/voyago/rides-go-sdk/pkg/apierror"
	"github.com/voyago/rides-go-sdk/pkg/client"
	"github.com/voyago/rides-go-sdk/pkg/config"
	"github.com/voyago/rides-go-sdk/pkg/payloads"
	"github.com/voyago/rides-go-sdk/pkg/services/library"
)

var ctx = context.Background()

type rewriteTransport struct {
	target *url.URL
	inner  *http.Client
}

func (t rewriteTransport) Do(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return t.inner.Do(req)
}

func setupTestServer(t *testing.T, handler http.HandlerFunc) (library.Products, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log, err := logger.New(false)
	require.NoError(t, err)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	c := client.New(&config.Config{ServerToken: "test-token"}, log)
	c.Transport = rewriteTransport{target: target, inner: server.Client()}
	return New(c, log), server
}

func TestList(t *testing.T) {
	service, _ := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/products", r.URL.Path)
		assert.Equal(t, "37.7749", r.URL.Query().Get("latitude"))
		assert.Equal(t, "-122.4194", r.URL.Query().Get("longitude"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[
			{"product_id":"a","display_name":"voyGO","capacity":4},
			{"product_id":"b","display_name":"voyXL","capacity":6,"shared":true}
		]}`))
	})

	products, err := service.List(ctx, payloads.Location{Latitude: 37.7749, Longitude: -122.4194})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "voyGO", products[0].DisplayName)
	assert.Equal(t, 6, products[1].Capacity)
	assert.True(t, products[1].Shared)
}

func TestListEmptyOnMissingField(t *testing.T) {
	service, _ := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	products, err := service.List(ctx, payloads.Location{Latitude: 37, Longitude: -122})

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGet(t *testing.T) {
	service, _ := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/products/8a9e3b2c", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		w.Write([]byte(`{"product_id":"8a9e3b2c","display_name":"voyGO","price_details":{"base":2.2,"currency_code":"USD"}}`))
	})

	product, err := service.Get(ctx, "8a9e3b2c")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "voyGO", product.DisplayName)
	require.NotNil(t, product.PriceDetails)
	assert.Equal(t, 2.2, product.PriceDetails.Base)
}

func TestGetNotFound(t *testing.T) {
	service, _ := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"not_found","message":"no such product"}`))
	})

	product, err := service.Get(ctx, "missing")

	assert.Nil(t, product)
	require.Error(t, err)
	assert.True(t, apierror.IsClient(err))
}
