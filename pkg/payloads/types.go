package payloads

import "strconv"

// Location is a pair of WGS84 coordinates used by every endpoint that is
// anchored to a pickup or dropoff point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatitudeString and LongitudeString render the coordinates the way they go
// on the wire: shortest exact decimal form.
func (l Location) LatitudeString() string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64)
}

func (l Location) LongitudeString() string {
	return strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}
