// Package qrcode renders the printable QR codes placed on dining tables.
package qrcode

import (
	"fmt"

	"comanda/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size          int
	recoveryLevel qrcode.RecoveryLevel
	publicBaseURL string
}

// NewQRCodeService creates a QR renderer. Size is the PNG edge in pixels;
// errorCorrectionLevel is one of L/M/Q/H, defaulting to M.
func NewQRCodeService(size int, errorCorrectionLevel, publicBaseURL string) service.QRCodeService {
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
		size:          size,
		recoveryLevel: level,
		publicBaseURL: publicBaseURL,
	}
}

// TableMenuQR encodes the public menu URL for the table. The mesa parameter
// lets the site greet diners with their table number.
func (s *qrcodeService) TableMenuQR(tableNumber int) ([]byte, error) {
	content := fmt.Sprintf("%s/site/menu?mesa=%d", s.publicBaseURL, tableNumber)

	png, err := qrcode.Encode(content, s.recoveryLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode table QR: %w", err)
	}

	return png, nil
}
