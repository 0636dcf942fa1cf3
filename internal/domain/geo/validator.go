// Package geo implements scan location validation: great-circle distance
// against a store geofence, with a country bounding-box fallback for stores
// that never stored coordinates.
package geo

import (
	"math"

	"stempel/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusMeters is the mean Earth radius used by the Haversine formula.
const earthRadiusMeters = 6371000.0

// Reason explains a validation verdict. Skip reasons accompany a valid result;
// gps_distance and wrong_country accompany an invalid one.
type Reason string

const (
	ReasonNone                      Reason = ""
	ReasonSkippedMonitoringDisabled Reason = "skipped:monitoring_disabled"
	ReasonSkippedMobileScanner      Reason = "skipped:mobile_scanner"
	ReasonSkippedNoGPSData          Reason = "skipped:no_gps_data"
	ReasonSkippedUnknownRegion      Reason = "skipped:unknown_region"
	ReasonGPSDistance               Reason = "gps_distance"
	ReasonWrongCountry              Reason = "wrong_country"
)

// Result is the outcome of a location check.
type Result struct {
	Valid           bool
	Reason          Reason
	DistanceMeters  *int // Set whenever a distance was computed.
	ThresholdMeters int  // The geofence limit applied; 0 when no distance check ran.
}

// Validator classifies scan locations. It is stateless apart from the country
// bounding-box table, so a single instance is shared across requests.
type Validator struct {
	countries []CountryBound
}

// NewValidator builds a validator with the given country table. A nil or
// empty table falls back to the built-in defaults.
func NewValidator(countries []CountryBound) *Validator {
	if len(countries) == 0 {
		countries = DefaultCountryBounds()
	}

	return &Validator{countries: countries}
}

// ValidateLocation decides whether a scan location is acceptable for a store.
// Policy: when the client cannot supply GPS data, or the scan region cannot be
// classified, the scan gets the benefit of the doubt.
func (v *Validator) ValidateLocation(store *entity.Store, scanLat, scanLng *float64) Result {
	if !store.MonitoringEnabled {
		return Result{Valid: true, Reason: ReasonSkippedMonitoringDisabled}
	}
	if store.ScannerType == entity.ScannerTypeMobile {
		return Result{Valid: true, Reason: ReasonSkippedMobileScanner}
	}
	if scanLat == nil || scanLng == nil {
		return Result{Valid: true, Reason: ReasonSkippedNoGPSData}
	}

	scanPoint := orb.Point{*scanLng, *scanLat}

	if !store.HasCoordinates() {
		return v.validateCountry(store, scanPoint)
	}

	storePoint := orb.Point{*store.Longitude, *store.Latitude}
	distance := roundMeters(Haversine(storePoint, scanPoint))
	threshold := store.ScanDistanceLimit()

	if distance > threshold {
		return Result{
			Valid:           false,
			Reason:          ReasonGPSDistance,
			DistanceMeters:  &distance,
			ThresholdMeters: threshold,
		}
	}

	return Result{Valid: true, DistanceMeters: &distance, ThresholdMeters: threshold}
}

// validateCountry classifies the scan point into a country bounding box and
// compares it with the store's country.
func (v *Validator) validateCountry(store *entity.Store, scanPoint orb.Point) Result {
	code := v.ClassifyCountry(scanPoint)
	if code == "" {
		return Result{Valid: true, Reason: ReasonSkippedUnknownRegion}
	}
	if code != store.Country {
		return Result{Valid: false, Reason: ReasonWrongCountry}
	}

	return Result{Valid: true}
}

// ClassifyCountry returns the code of the first bounding box containing the
// point, or "" when no box matches. Table order is significant: deployments
// list narrower boxes before wider overlapping ones.
func (v *Validator) ClassifyCountry(point orb.Point) string {
	for _, country := range v.countries {
		if country.Bound.Contains(point) {
			return country.Code
		}
	}

	return ""
}

// Haversine computes the great-circle distance in meters between two points.
func Haversine(a, b orb.Point) float64 {
	lat1 := toRadians(a.Lat())
	lat2 := toRadians(b.Lat())
	dLat := toRadians(b.Lat() - a.Lat())
	dLon := toRadians(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func roundMeters(meters float64) int {
	return int(math.Round(meters))
}
