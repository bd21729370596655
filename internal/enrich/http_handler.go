package enrich

import (
	"net/http"

	"villagebooks/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Metadata handles GET /books/metadata?isbn=. Lookup failures are
// reported in the status field of a successful response; the form falls
// back to manual entry.
func (h *HTTPHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	isbn := r.URL.Query().Get("isbn")
	if isbn == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "isbn query parameter is required", nil)
		return
	}

	res := h.svc.Lookup(r.Context(), isbn)
	httpx.JSONSuccess(w, r, res, nil)
}
