// Package service declares domain-level service contracts implemented by the
// infrastructure layer.
package service

// QRCodeService renders QR codes for dining tables. The admin table editor
// prints one per table; scanning it opens the public menu for that table.
type QRCodeService interface {
	// TableMenuQR returns a PNG QR code encoding the public menu URL for
	// the given table number.
	TableMenuQR(tableNumber int) ([]byte, error)
}
