package geo

import "github.com/paulmach/orb"

// CountryBound pairs an ISO 3166-1 alpha-2 code with its bounding box.
type CountryBound struct {
	Code  string
	Bound orb.Bound
}

// NewCountryBound builds one bounding-box row from raw coordinates.
func NewCountryBound(code string, minLon, minLat, maxLon, maxLat float64) CountryBound {
	return CountryBound{Code: code, Bound: bound(minLon, minLat, maxLon, maxLat)}
}

// DefaultCountryBounds returns the built-in bounding-box table covering the
// markets the service operates in. The boxes are coarse: the fallback only
// has to tell countries apart, not trace borders, and deployments may replace
// the table through configuration. Narrower boxes come first because
// classification picks the first match.
func DefaultCountryBounds() []CountryBound {
	return []CountryBound{
		{Code: "CH", Bound: bound(5.96, 45.82, 10.49, 47.81)},
		{Code: "AT", Bound: bound(9.53, 46.37, 17.16, 49.02)},
		{Code: "NL", Bound: bound(3.36, 50.75, 7.23, 53.56)},
		{Code: "BE", Bound: bound(2.54, 49.50, 6.41, 51.51)},
		{Code: "CZ", Bound: bound(12.09, 48.55, 18.86, 51.06)},
		{Code: "DE", Bound: bound(5.87, 47.27, 15.04, 55.06)},
		{Code: "HU", Bound: bound(16.11, 45.74, 22.91, 48.59)},
		{Code: "PL", Bound: bound(14.12, 49.00, 24.15, 54.84)},
		{Code: "FR", Bound: bound(-5.14, 41.33, 9.56, 51.09)},
		{Code: "IT", Bound: bound(6.63, 35.49, 18.52, 47.10)},
	}
}

func bound(minLon, minLat, maxLon, maxLat float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}
}
