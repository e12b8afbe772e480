package records

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"healthsync/internal/domain/sharing"
)

// CorruptLinkMessage is the single user-visible message for every decode
// failure.
const CorruptLinkMessage = "The provided data link is invalid or corrupted."

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.decodeOp(), h.decode)
}

func (h *Handler) decode(_ context.Context, input *decodeInput) (*decodeOutput, error) {
	s, err := sharing.Decode(input.Data)
	if err != nil {
		if errors.Is(err, sharing.ErrCorruptLink) {
			h.log.Debug("rejecting corrupt share link", "error", err)
			return nil, huma.Error422UnprocessableEntity(CorruptLinkMessage)
		}
		return nil, err
	}

	return &decodeOutput{Body: s}, nil
}
