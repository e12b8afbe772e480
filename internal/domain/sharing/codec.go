package sharing

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"healthsync/internal/domain/event"
	"healthsync/internal/domain/snapshot"
)

// The share link embeds the whole snapshot in one URL path segment:
// JSON text, zlib-compressed, then base64 in the unpadded URL-safe alphabet
// so no character needs percent-escaping. Compactness wins over speed, so
// compression runs at the highest level.
//
// Both transforms are pure: no network, disk, or shared state.

// Encode turns a snapshot into a URL-safe text fragment.
func Encode(s snapshot.Snapshot) (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("init compressor: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		return "", fmt.Errorf("compress snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compress snapshot: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode is the inverse of Encode. Any stage failing reports ErrCorruptLink;
// a payload without a timeline decodes as an empty timeline.
func Decode(text string) (snapshot.Snapshot, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%w: decode text: %v", ErrCorruptLink, err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%w: open compressed stream: %v", ErrCorruptLink, err)
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%w: decompress: %v", ErrCorruptLink, err)
	}

	trimmed := bytes.TrimLeft(payload, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return snapshot.Snapshot{}, fmt.Errorf("%w: payload is not a JSON object", ErrCorruptLink)
	}

	var s snapshot.Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%w: parse payload: %v", ErrCorruptLink, err)
	}

	// Missing collections are tolerated as empty.
	if s.Timeline == nil {
		s.Timeline = []event.Event{}
	}
	if s.TravelHistory == nil {
		s.TravelHistory = []json.RawMessage{}
	}
	if len(s.FamilyHistory) == 0 {
		s.FamilyHistory = json.RawMessage("{}")
	}

	return s, nil
}
