package payloads

// RideParameters is the JSON body of a ride-request estimate. Zero
// coordinates are omitted so a parameters value built for a product-only
// estimate does not send a bogus (0,0) dropoff.
type RideParameters struct {
	ProductID      string  `json:"product_id,omitempty"`
	StartLatitude  float64 `json:"start_latitude,omitempty"`
	StartLongitude float64 `json:"start_longitude,omitempty"`
	EndLatitude    float64 `json:"end_latitude,omitempty"`
	EndLongitude   float64 `json:"end_longitude,omitempty"`
	SeatCount      int     `json:"seat_count,omitempty"`
}

// RideEstimateResult is the response of POST /v1/requests/estimate.
type RideEstimateResult struct {
	// PickupEstimate is the expected wait in minutes before pickup.
	PickupEstimate int   `json:"pickup_estimate"`
	Fare           *Fare `json:"fare"`
	Trip           *Trip `json:"trip"`
}

// Fare is an upfront fare quote. FareID can be attached to a subsequent ride
// request to lock the quoted value until ExpiresAt.
type Fare struct {
	FareID       string  `json:"fare_id"`
	Value        float64 `json:"value"`
	CurrencyCode string  `json:"currency_code"`
	Display      string  `json:"display"`
	ExpiresAt    int64   `json:"expires_at"`
}

type Trip struct {
	DistanceEstimate float64 `json:"distance_estimate"`
	DistanceUnit     string  `json:"distance_unit"`
	DurationEstimate int     `json:"duration_estimate"`
}
