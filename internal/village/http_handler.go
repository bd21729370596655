package village

import (
	"net/http"

	"villagebooks/internal/httpx"
)

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// List handles GET /villages.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	villages, err := h.repo.List(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if villages == nil {
		villages = []Village{}
	}
	httpx.JSONSuccess(w, r, villages, nil)
}
