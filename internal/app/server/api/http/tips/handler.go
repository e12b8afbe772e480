package tips

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"healthsync/internal/domain/tips"
)

type Handler struct {
	service    tips.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service tips.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.generateTipsOp(), h.generateTips)
	huma.Register(api, h.analyzeOp(), h.analyze)
	huma.Register(api, h.chatOp(), h.chat)
}

// An unavailable generator is an expected outcome: the response carries the
// disabled notice with a 200, mirroring the client's treatment.

func (h *Handler) generateTips(_ context.Context, input *tipsInput) (*tipsOutput, error) {
	result, err := h.service.GenerateTravelTips(input.Body.Location, input.Body.Age)
	if err != nil {
		if errors.Is(err, tips.ErrUnavailable) {
			return &tipsOutput{Body: tipsResponse{Error: tips.DisabledMessage}}, nil
		}
		return nil, err
	}

	return &tipsOutput{Body: tipsResponse{Data: &result}}, nil
}

func (h *Handler) analyze(_ context.Context, input *analysisInput) (*analysisOutput, error) {
	result, err := h.service.AnalyzeFamilyHistory(input.Body.FamilyHistory)
	if err != nil {
		if errors.Is(err, tips.ErrUnavailable) {
			return &analysisOutput{Body: analysisResponse{Error: tips.DisabledMessage}}, nil
		}
		return nil, err
	}

	return &analysisOutput{Body: analysisResponse{Data: &result}}, nil
}

func (h *Handler) chat(_ context.Context, input *chatInput) (*chatOutput, error) {
	answer, err := h.service.FamilyHistoryChat(input.Body.History, input.Body.Question)
	if err != nil {
		if errors.Is(err, tips.ErrUnavailable) {
			return &chatOutput{Body: chatResponse{Error: tips.DisabledMessage}}, nil
		}
		return nil, err
	}

	return &chatOutput{Body: chatResponse{Data: &answer}}, nil
}
