package geo

import (
	"testing"

	"stempel/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

// Berlin Alexanderplatz as the store anchor for distance tests.
const (
	storeLat = 52.5219
	storeLng = 13.4132
)

func fixedStore() *entity.Store {
	return &entity.Store{
		Name:              "Späti am Alex",
		Latitude:          float64Ptr(storeLat),
		Longitude:         float64Ptr(storeLng),
		MonitoringEnabled: true,
		ScannerType:       entity.ScannerTypeFixed,
		Country:           "DE",
	}
}

func TestValidateLocation_MonitoringDisabledSkips(t *testing.T) {
	validator := NewValidator(nil)

	store := fixedStore()
	store.MonitoringEnabled = false

	// Location is far off; monitoring off must still pass.
	result := validator.ValidateLocation(store, float64Ptr(40.71), float64Ptr(-74.0))
	assert.True(t, result.Valid)
	assert.Equal(t, ReasonSkippedMonitoringDisabled, result.Reason)
	assert.Nil(t, result.DistanceMeters)
}

func TestValidateLocation_MobileScannerSkips(t *testing.T) {
	validator := NewValidator(nil)

	store := fixedStore()
	store.ScannerType = entity.ScannerTypeMobile

	result := validator.ValidateLocation(store, float64Ptr(40.71), float64Ptr(-74.0))
	assert.True(t, result.Valid)
	assert.Equal(t, ReasonSkippedMobileScanner, result.Reason)
}

func TestValidateLocation_MissingGPSGetsBenefitOfDoubt(t *testing.T) {
	validator := NewValidator(nil)
	store := fixedStore()

	tests := []struct {
		name string
		lat  *float64
		lng  *float64
	}{
		{"both missing", nil, nil},
		{"latitude missing", nil, float64Ptr(storeLng)},
		{"longitude missing", float64Ptr(storeLat), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.ValidateLocation(store, tt.lat, tt.lng)
			assert.True(t, result.Valid)
			assert.Equal(t, ReasonSkippedNoGPSData, result.Reason)
		})
	}
}

func TestValidateLocation_WithinGeofence(t *testing.T) {
	validator := NewValidator(nil)
	store := fixedStore()

	// Roughly 150m east of the store.
	result := validator.ValidateLocation(store, float64Ptr(storeLat), float64Ptr(storeLng+0.0022))
	assert.True(t, result.Valid)
	assert.Equal(t, ReasonNone, result.Reason)
	require.NotNil(t, result.DistanceMeters)
	assert.Less(t, *result.DistanceMeters, entity.DefaultMaxScanDistance)
	assert.Equal(t, entity.DefaultMaxScanDistance, result.ThresholdMeters)
}

func TestValidateLocation_BeyondGeofence(t *testing.T) {
	validator := NewValidator(nil)
	store := fixedStore()

	// Roughly 1.4km east of the store, well past the default 500m.
	result := validator.ValidateLocation(store, float64Ptr(storeLat), float64Ptr(storeLng+0.02))
	assert.False(t, result.Valid)
	assert.Equal(t, ReasonGPSDistance, result.Reason)
	require.NotNil(t, result.DistanceMeters)
	assert.Greater(t, *result.DistanceMeters, entity.DefaultMaxScanDistance)
	assert.Equal(t, entity.DefaultMaxScanDistance, result.ThresholdMeters)
}

func TestValidateLocation_CustomDistanceLimit(t *testing.T) {
	validator := NewValidator(nil)

	store := fixedStore()
	store.MaxScanDistance = 100

	// The ~150m scan that passes the default limit fails a 100m one.
	result := validator.ValidateLocation(store, float64Ptr(storeLat), float64Ptr(storeLng+0.0022))
	assert.False(t, result.Valid)
	assert.Equal(t, ReasonGPSDistance, result.Reason)
	assert.Equal(t, 100, result.ThresholdMeters)
}

func TestValidateLocation_CountryFallbackMatch(t *testing.T) {
	validator := NewValidator(nil)

	store := fixedStore()
	store.Latitude = nil
	store.Longitude = nil

	// Scan from inside Germany for a German store.
	result := validator.ValidateLocation(store, float64Ptr(48.14), float64Ptr(11.58))
	assert.True(t, result.Valid)
	assert.Equal(t, ReasonNone, result.Reason)
}

func TestValidateLocation_CountryFallbackMismatch(t *testing.T) {
	validator := NewValidator(nil)

	store := fixedStore()
	store.Latitude = nil
	store.Longitude = nil

	// Scan from Rome for a German store.
	result := validator.ValidateLocation(store, float64Ptr(41.90), float64Ptr(12.50))
	assert.False(t, result.Valid)
	assert.Equal(t, ReasonWrongCountry, result.Reason)
}

func TestValidateLocation_UnknownRegionGetsBenefitOfDoubt(t *testing.T) {
	validator := NewValidator(nil)

	store := fixedStore()
	store.Latitude = nil
	store.Longitude = nil

	// Middle of the Atlantic matches no bounding box.
	result := validator.ValidateLocation(store, float64Ptr(30.0), float64Ptr(-40.0))
	assert.True(t, result.Valid)
	assert.Equal(t, ReasonSkippedUnknownRegion, result.Reason)
}

func TestClassifyCountry_TableOrderWins(t *testing.T) {
	// Zurich sits inside both the CH and the wider FR/DE candidate boxes of
	// some tables; the default table lists CH first.
	validator := NewValidator(nil)
	assert.Equal(t, "CH", validator.ClassifyCountry(orb.Point{8.54, 47.37}))

	// A custom table is used as given, no defaults mixed in.
	custom := NewValidator([]CountryBound{
		NewCountryBound("XX", -1, -1, 1, 1),
	})
	assert.Equal(t, "XX", custom.ClassifyCountry(orb.Point{0, 0}))
	assert.Equal(t, "", custom.ClassifyCountry(orb.Point{8.54, 47.37}))
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Berlin to Munich, roughly 504km.
	berlin := orb.Point{13.4050, 52.5200}
	munich := orb.Point{11.5820, 48.1351}

	distance := Haversine(berlin, munich)
	assert.InDelta(t, 504000, distance, 5000)
}

func TestHaversine_ZeroDistance(t *testing.T) {
	point := orb.Point{13.4050, 52.5200}
	assert.Zero(t, Haversine(point, point))
}
