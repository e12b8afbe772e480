package tips

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// DisabledMessage is the fixed notice shown whenever a generation feature is
// asked for while the capability is unavailable.
const DisabledMessage = "This feature has been disabled to prevent costs."

// ErrUnavailable marks the capability as switched off. Callers treat it as a
// normal external state and show DisabledMessage, never as a fault.
var ErrUnavailable = errors.New("tips feature unavailable")

type Servicer interface {
	Available() bool
	GenerateTravelTips(location string, age int) (TipsResult, error)
	AnalyzeFamilyHistory(history string) (AnalysisResult, error)
	FamilyHistoryChat(history, question string) (string, error)
}

// Service fronts the AI generation features. In this build the capability is
// permanently unavailable; the generation backends produce no data.
type Service struct {
	available bool
	log       *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	return &Service{
		available: false,
		log:       log.With("component", "tips_service"),
	}
}

func (s *Service) Available() bool {
	return s.available
}

func (s *Service) GenerateTravelTips(location string, age int) (TipsResult, error) {
	if !s.available {
		s.log.Debug("travel tips requested while unavailable", "location", location)
		return TipsResult{}, fmt.Errorf("%w: %s", ErrUnavailable, DisabledMessage)
	}
	return TipsResult{}, fmt.Errorf("%w: no generation backend", ErrUnavailable)
}

func (s *Service) AnalyzeFamilyHistory(history string) (AnalysisResult, error) {
	if !s.available {
		return AnalysisResult{}, fmt.Errorf("%w: %s", ErrUnavailable, DisabledMessage)
	}
	return AnalysisResult{}, fmt.Errorf("%w: no generation backend", ErrUnavailable)
}

func (s *Service) FamilyHistoryChat(history, question string) (string, error) {
	if !s.available {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, DisabledMessage)
	}
	return "", fmt.Errorf("%w: no generation backend", ErrUnavailable)
}
