package qrcode

import (
	"testing"

	"foodorder/config"

	"github.com/google/uuid"
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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://food.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_MenuURL(t *testing.T) {
	restaurantID := uuid.New()

	service := NewQRCodeService(256, "M", "https://food.example.com/")
	assert.Equal(t, "https://food.example.com/restaurants/"+restaurantID.String()+"/menu", service.MenuURL(restaurantID))

	fallback := NewFromConfig(&config.Config{})
	assert.Equal(t, "http://localhost:8080/restaurants/"+restaurantID.String()+"/menu", fallback.MenuURL(restaurantID))
}

func TestQRCodeService_GenerateMenuQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://food.example.com")

	qrBytes, err := service.GenerateMenuQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateMenuQR_DifferentSizes(t *testing.T) {
	restaurantID := uuid.New()

	small, err := NewQRCodeService(128, "M", "").GenerateMenuQR(restaurantID)
	require.NoError(t, err)
	large, err := NewQRCodeService(512, "M", "").GenerateMenuQR(restaurantID)
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}
