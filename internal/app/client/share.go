package client

import (
	"healthsync/internal/domain/sharing"
	"healthsync/internal/domain/snapshot"
)

// Snapshot assembles the current share snapshot from the store.
func (a *App) Snapshot() snapshot.Snapshot {
	return a.assembler.Assemble()
}

// ShareURL builds the full share link for the current snapshot.
func (a *App) ShareURL() (string, error) {
	return sharing.ShareURL(a.config.BaseURL, a.Snapshot())
}

// ShareQRCode writes a QR image of the current share link to path and
// returns the link itself.
func (a *App) ShareQRCode(path string) (string, error) {
	url, err := a.ShareURL()
	if err != nil {
		return "", err
	}

	if err := sharing.WriteQRCodeFile(url, path, a.config.QRSize); err != nil {
		return "", err
	}

	return url, nil
}
