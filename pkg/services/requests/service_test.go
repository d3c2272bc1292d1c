package requests

import (
	"context"
	"encoding/json"
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

func setupTestServer(t *testing.T, handler http.HandlerFunc) (library.Requests, *httptest.Server) {
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

func TestEstimate(t *testing.T) {
	service, _ := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/requests/estimate", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var params payloads.RideParameters
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "8a9e3b2c", params.ProductID)
		assert.Equal(t, 37.7749, params.StartLatitude)

		w.Write([]byte(`{
			"pickup_estimate": 4,
			"fare": {"fare_id":"f1","value":13.5,"currency_code":"USD","display":"$13.50"},
			"trip": {"distance_estimate":8.5,"distance_unit":"mile","duration_estimate":960}
		}`))
	})

	result, err := service.Estimate(ctx, &payloads.RideParameters{
		ProductID:      "8a9e3b2c",
		StartLatitude:  37.7749,
		StartLongitude: -122.4194,
		EndLatitude:    37.8715,
		EndLongitude:   -122.273,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 4, result.PickupEstimate)
	require.NotNil(t, result.Fare)
	assert.Equal(t, "$13.50", result.Fare.Display)
	require.NotNil(t, result.Trip)
	assert.Equal(t, 960, result.Trip.DurationEstimate)
}

func TestEstimateValidationError(t *testing.T) {
	service, _ := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"code":"validation_failed","message":"start point required","fields":{"start_latitude":"required"}}`))
	})

	result, err := service.Estimate(ctx, &payloads.RideParameters{ProductID: "8a9e3b2c"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apierror.IsClient(err))

	var ridesErr *apierror.Error
	require.ErrorAs(t, err, &ridesErr)
	assert.Equal(t, "validation_failed", ridesErr.Code)
	assert.Equal(t, map[string]any{"start_latitude": "required"}, ridesErr.Meta)
}
