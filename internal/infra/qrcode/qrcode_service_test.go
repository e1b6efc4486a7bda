package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestTableMenuQR_ReturnsPNG(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://rinconcriollo.pe")

	png, err := service.TableMenuQR(12)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X", "https://rinconcriollo.pe")

	png, err := service.TableMenuQR(1)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
