package service

// QRCodeService defines the interface for scan QR code generation and parsing.
type QRCodeService interface {
	// GenerateScanQR renders the QR code customers scan at a store, encoding
	// the store key and its current daily token.
	GenerateScanQR(storeKey, dailyToken string) ([]byte, error)

	// ParseScanQR parses QR payload data back into store key and token.
	ParseScanQR(qrData string) (storeKey, dailyToken string, err error)
}
