package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for menu QR code generation
type QRCodeService interface {
	// GenerateMenuQR renders a PNG QR code pointing at the public menu of a restaurant
	GenerateMenuQR(restaurantID uuid.UUID) ([]byte, error)

	// MenuURL returns the URL encoded in the restaurant's QR code
	MenuURL(restaurantID uuid.UUID) string
}
