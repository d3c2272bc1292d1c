package payloads

// Product describes one ride product available at a location.
type Product struct {
	ProductID    string        `json:"product_id"`
	Description  string        `json:"description"`
	DisplayName  string        `json:"display_name"`
	Capacity     int           `json:"capacity"`
	Image        string        `json:"image"`
	Shared       bool          `json:"shared"`
	PriceDetails *PriceDetails `json:"price_details"`
}

// PriceDetails is the fare structure attached to a product. It is absent for
// products whose pricing is only known at estimate time.
type PriceDetails struct {
	Base            float64       `json:"base"`
	Minimum         float64       `json:"minimum"`
	CostPerMinute   float64       `json:"cost_per_minute"`
	CostPerDistance float64       `json:"cost_per_distance"`
	DistanceUnit    string        `json:"distance_unit"`
	CancellationFee float64       `json:"cancellation_fee"`
	CurrencyCode    string        `json:"currency_code"`
	ServiceFees     []*ServiceFee `json:"service_fees"`
}

type ServiceFee struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}
