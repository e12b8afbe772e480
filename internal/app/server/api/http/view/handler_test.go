package view

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"healthsync/internal/app/server/api/http/records"
	"healthsync/internal/domain/event"
	"healthsync/internal/domain/sharing"
	"healthsync/internal/domain/snapshot"
)

func serveView(t *testing.T, data string) *httptest.ResponseRecorder {
	t.Helper()

	mux := chi.NewMux()
	mux.Get("/view/{data}", Handler(slog.Default()))

	req := httptest.NewRequest(http.MethodGet, "/view/"+data, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestHandler_RendersSnapshot(t *testing.T) {
	// Arrange
	name := "Jane Doe"
	age := "34"
	s := snapshot.Snapshot{
		PersonalInfo: snapshot.PersonalInfo{Name: &name, Age: &age},
		Timeline: []event.Event{
			{ID: "v1", Age: 30, Date: "2022-01-01", Title: "ER visit", Type: event.TypeDoctorVisit},
			{ID: "m1", Age: 30, Date: "2022-01-01", Title: "Tamiflu", Type: event.TypeMedication},
			{ID: "d1", Age: 30, Date: "2022-01-01", Title: "Flu", Type: event.TypeDisease},
		},
		FamilyHistory: json.RawMessage(`{"analysis":{"riskFactors":"heart disease"}}`),
		TravelHistory: []json.RawMessage{
			json.RawMessage(`{"location":"Kenya","year":"2024","notes":"prophylaxis"}`),
		},
	}
	encoded, err := sharing.Encode(s)
	require.NoError(t, err)

	// Act
	rec := serveView(t, encoded)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Shared Health Summary")
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "ER visit")
	assert.Contains(t, body, "Tamiflu")
	assert.Contains(t, body, "Flu")
	assert.Contains(t, body, "heart disease")
	assert.Contains(t, body, "Kenya")
}

func TestHandler_UnsetFieldsRenderPlaceholder(t *testing.T) {
	// Arrange
	encoded, err := sharing.Encode(snapshot.Empty())
	require.NoError(t, err)

	// Act
	rec := serveView(t, encoded)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "N/A")
}

func TestHandler_CorruptLink(t *testing.T) {
	// Act
	rec := serveView(t, "not-a-valid-link")

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), records.CorruptLinkMessage)
}
