package records

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) decodeOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-decode",
		Method:      http.MethodGet,
		Path:        "/api/v1/records/{data}",
		Summary:     "Decode a shared snapshot",
		Description: "Decodes the snapshot embedded in a share link and returns it as JSON. The server stores nothing; the link is the data.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}
