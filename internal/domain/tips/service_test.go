package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestService_AllGenerationIsUnavailable(t *testing.T) {
	service := NewService(slog.Default())

	assert.False(t, service.Available())

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "travel tips",
			call: func() error {
				_, err := service.GenerateTravelTips("Kenya", 30)
				return err
			},
		},
		{
			name: "family history analysis",
			call: func() error {
				_, err := service.AnalyzeFamilyHistory("long family history text")
				return err
			},
		},
		{
			name: "family history chat",
			call: func() error {
				_, err := service.FamilyHistoryChat("history", "any hereditary risks?")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			assert.ErrorIs(t, err, ErrUnavailable)
			assert.ErrorContains(t, err, DisabledMessage)
		})
	}
}
