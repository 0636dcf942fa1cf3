// Package qrcode renders and parses the QR codes customers scan at stores.
package qrcode

import (
	"encoding/json"
	"fmt"

	"stempel/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const scanQRType = "scan"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload structure
type QRCodeData struct {
	StoreKey string `json:"store_key"`
	Token    string `json:"token"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateScanQR renders the QR code customers scan at a store.
func (s *qrcodeService) GenerateScanQR(storeKey, dailyToken string) ([]byte, error) {
	data := QRCodeData{
		StoreKey: storeKey,
		Token:    dailyToken,
		Type:     scanQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseScanQR parses QR payload data back into store key and token.
func (s *qrcodeService) ParseScanQR(qrData string) (string, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != scanQRType {
		return "", "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.StoreKey == "" || data.Token == "" {
		return "", "", fmt.Errorf("incomplete QR code payload")
	}

	return data.StoreKey, data.Token, nil
}
