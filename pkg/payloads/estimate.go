package payloads

// PriceEstimate is the estimated fare range for one product between a start
// and an end location.
type PriceEstimate struct {
	ProductID       string  `json:"product_id"`
	CurrencyCode    string  `json:"currency_code"`
	DisplayName     string  `json:"display_name"`
	Estimate        string  `json:"estimate"`
	LowEstimate     float64 `json:"low_estimate"`
	HighEstimate    float64 `json:"high_estimate"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
	// Duration in seconds, distance in the product's distance unit.
	Duration int     `json:"duration"`
	Distance float64 `json:"distance"`
}

// TimeEstimate is the estimated pickup time for one product at a location.
type TimeEstimate struct {
	ProductID   string `json:"product_id"`
	DisplayName string `json:"display_name"`
	// Estimate is the ETA in seconds.
	Estimate int `json:"estimate"`
}
