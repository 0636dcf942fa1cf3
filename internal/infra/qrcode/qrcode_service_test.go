package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateScanQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateScanQR("kiosk-42", "daily-token")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateScanQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateScanQR("kiosk-42", "daily-token")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseScanQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		StoreKey: "kiosk-42",
		Token:    "daily-token",
		Type:     "scan",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	storeKey, token, err := service.ParseScanQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "kiosk-42", storeKey)
	assert.Equal(t, "daily-token", token)
}

func TestQRCodeService_ParseScanQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, _, err := service.ParseScanQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseScanQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		StoreKey: "kiosk-42",
		Token:    "daily-token",
		Type:     "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseScanQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseScanQR_IncompletePayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		StoreKey: "kiosk-42",
		Type:     "scan",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseScanQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete QR code payload")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Generate QR code
	qrBytes, err := service.GenerateScanQR("kiosk-42", "daily-token")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Note: We can't directly parse the PNG bytes back to JSON
	// In real usage, the QR code would be scanned by a device
	// and the JSON string would be extracted
	// For testing, we verify the data structure manually
	data := QRCodeData{
		StoreKey: "kiosk-42",
		Token:    "daily-token",
		Type:     "scan",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	storeKey, token, err := service.ParseScanQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "kiosk-42", storeKey)
	assert.Equal(t, "daily-token", token)
}
