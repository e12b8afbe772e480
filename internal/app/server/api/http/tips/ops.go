package tips

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) generateTipsOp() huma.Operation {
	return huma.Operation{
		OperationID: "tips-generate",
		Method:      http.MethodPost,
		Path:        "/api/v1/tips",
		Summary:     "Generate travel health tips",
		Description: "Generates destination-specific health tips. Currently disabled; responds with the disabled notice.",
		Tags:        []string{"tips"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) analyzeOp() huma.Operation {
	return huma.Operation{
		OperationID: "family-history-analyze",
		Method:      http.MethodPost,
		Path:        "/api/v1/analysis",
		Summary:     "Analyze family history for risk factors",
		Description: "Currently disabled; responds with the disabled notice.",
		Tags:        []string{"tips"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) chatOp() huma.Operation {
	return huma.Operation{
		OperationID: "family-history-chat",
		Method:      http.MethodPost,
		Path:        "/api/v1/chat",
		Summary:     "Ask a question about a family history",
		Description: "Currently disabled; responds with the disabled notice.",
		Tags:        []string{"tips"},
		Middlewares: h.middleware,
	}
}
