package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// EncodePNG renders content as a PNG QR code. Used to hand out the kiosk
// attendance URL on the dashboard.
func EncodePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
