package sharing

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// QRCodePNG renders the share URL as a PNG image, so the recipient can scan
// the link instead of typing it.
func QRCodePNG(shareURL string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRSize
	}

	png, err := qrcode.Encode(shareURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	return png, nil
}

// WriteQRCodeFile writes the QR image for a share URL to the given path.
func WriteQRCodeFile(shareURL, path string, size int) error {
	if size <= 0 {
		size = defaultQRSize
	}

	if err := qrcode.WriteFile(shareURL, qrcode.Medium, size, path); err != nil {
		return fmt.Errorf("write qr code: %w", err)
	}

	return nil
}
