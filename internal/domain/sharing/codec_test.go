package sharing

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthsync/internal/domain/event"
	"healthsync/internal/domain/snapshot"
)

func strPtr(s string) *string { return &s }

func compress(t *testing.T, payload string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// flipFirstChar swaps the first character for a different alphabet member,
// simulating a link mangled in transit.
func flipFirstChar(text string) string {
	replacement := byte('A')
	if text[0] == 'A' {
		replacement = 'B'
	}
	return string(replacement) + text[1:]
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		snapshot snapshot.Snapshot
	}{
		{
			name:     "empty snapshot",
			snapshot: snapshot.Empty(),
		},
		{
			name: "full snapshot with nested details",
			snapshot: snapshot.Snapshot{
				PersonalInfo: snapshot.PersonalInfo{
					Name:   strPtr("Jane Doe"),
					Age:    strPtr("34"),
					Height: strPtr("170"),
					Weight: strPtr("62"),
				},
				Timeline: []event.Event{
					{
						ID:    "e1",
						Age:   30,
						Date:  "2022-03-10",
						Title: "ER visit",
						Type:  event.TypeDoctorVisit,
						Details: &event.VisitDetails{
							VisitType:             event.VisitSerious,
							DiseaseName:           "Pneumonia",
							MedicationsPrescribed: "Amoxicillin",
						},
					},
					{
						ID:      "e2",
						Age:     30,
						Date:    "2022-03-10",
						Title:   "Amoxicillin",
						Type:    event.TypeMedication,
						Details: &event.MedicationDetails{Status: event.StatusStopped},
					},
					{
						ID:      "e3",
						Age:     34,
						Date:    "2026-01-05",
						Title:   "Annual checkup",
						Type:    event.TypeMeasurement,
						Details: &event.MeasurementDetails{Height: "170", Weight: "62"},
					},
				},
				FamilyHistory: json.RawMessage(`{"analysis":{"riskFactors":"heart disease"}}`),
				TravelHistory: []json.RawMessage{
					json.RawMessage(`{"location":"Kenya","year":"2024","notes":"malaria prophylaxis"}`),
				},
			},
		},
		{
			name: "profile only, empty collections",
			snapshot: snapshot.Snapshot{
				PersonalInfo:  snapshot.PersonalInfo{Name: strPtr("Bob")},
				Timeline:      []event.Event{},
				FamilyHistory: json.RawMessage("{}"),
				TravelHistory: []json.RawMessage{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			text, err := Encode(tt.snapshot)
			require.NoError(t, err)

			decoded, err := Decode(text)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.snapshot.PersonalInfo, decoded.PersonalInfo)
			assert.Equal(t, tt.snapshot.Timeline, decoded.Timeline)
			assert.JSONEq(t, string(tt.snapshot.FamilyHistory), string(decoded.FamilyHistory))
			assert.Len(t, decoded.TravelHistory, len(tt.snapshot.TravelHistory))
		})
	}
}

func TestEncode_ProducesURLSafeText(t *testing.T) {
	// Arrange
	s := snapshot.Empty()
	s.PersonalInfo.Name = strPtr("url safety check with spaces & symbols ?/#")

	// Act
	text, err := Encode(s)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	for _, r := range text {
		valid := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_'
		assert.True(t, valid, "character %q needs percent-escaping", r)
	}
}

func TestDecode_CorruptInput(t *testing.T) {
	validLink, err := Encode(snapshot.Empty())
	require.NoError(t, err)

	notAnObject := base64.RawURLEncoding.EncodeToString(compress(t, `[1,2,3]`))

	tests := []struct {
		name string
		text string
	}{
		{
			name: "not base64",
			text: "!!!not-base64!!!",
		},
		{
			name: "base64 but not compressed",
			text: base64.RawURLEncoding.EncodeToString([]byte("plain text")),
		},
		{
			name: "compressed but not JSON",
			text: base64.RawURLEncoding.EncodeToString(compress(t, "not json at all")),
		},
		{
			name: "JSON but not an object",
			text: notAnObject,
		},
		{
			name: "tampered link",
			text: flipFirstChar(validLink),
		},
		{
			name: "truncated link",
			text: validLink[:len(validLink)/2],
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			_, err := Decode(tt.text)

			// Assert
			assert.ErrorIs(t, err, ErrCorruptLink)
		})
	}
}

func TestDecode_MissingCollectionsDefaultToEmpty(t *testing.T) {
	// Arrange: a payload carrying only the profile keys.
	payload := `{"personalInfo":{"name":null,"age":null,"height":null,"weight":null}}`
	text := base64.RawURLEncoding.EncodeToString(compress(t, payload))

	// Act
	decoded, err := Decode(text)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, decoded.Timeline)
	assert.Empty(t, decoded.Timeline)
	assert.NotNil(t, decoded.TravelHistory)
	assert.Empty(t, decoded.TravelHistory)
	assert.JSONEq(t, "{}", string(decoded.FamilyHistory))
	assert.Nil(t, decoded.PersonalInfo.Name)
}

func TestShareURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "plain base", baseURL: "http://localhost:8080"},
		{name: "trailing slash trimmed", baseURL: "http://localhost:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := ShareURL(tt.baseURL, snapshot.Empty())

			require.NoError(t, err)
			assert.Contains(t, url, "http://localhost:8080/view/")
			assert.NotContains(t, url[len("http://"):], "//")
		})
	}
}
