package sharing

import (
	"fmt"
	"strings"

	"healthsync/internal/domain/snapshot"
)

// ShareURL encodes a snapshot and appends it to the viewer base URL as one
// path segment: https://<host>/view/<encoded>.
func ShareURL(baseURL string, s snapshot.Snapshot) (string, error) {
	encoded, err := Encode(s)
	if err != nil {
		return "", fmt.Errorf("build share url: %w", err)
	}

	return fmt.Sprintf("%s/view/%s", strings.TrimRight(baseURL, "/"), encoded), nil
}
