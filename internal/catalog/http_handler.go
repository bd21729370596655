package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"villagebooks/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type createBookRequest struct {
	Title           string `json:"title" validate:"required"`
	AuthorName      string `json:"authorName" validate:"required"`
	GenreName       string `json:"genreName" validate:"required"`
	PublicationYear *int   `json:"publicationYear" validate:"omitempty,gte=0"`
	Publisher       string `json:"publisher"`
	Description     string `json:"description"`
	ConditionID     *int   `json:"conditionId" validate:"omitempty,gte=1,lte=4"`
	VillageID       *int64 `json:"villageId"`
	OwnerID         *int64 `json:"ownerId"`
	Language        string `json:"language"`
}

// Create handles POST /books.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book submission", details)
		return
	}

	book, err := h.svc.CreateBook(r.Context(), CreateBookInput{
		Title:           req.Title,
		AuthorName:      req.AuthorName,
		GenreName:       req.GenreName,
		PublicationYear: req.PublicationYear,
		Publisher:       req.Publisher,
		Description:     req.Description,
		ConditionID:     req.ConditionID,
		VillageID:       req.VillageID,
		OwnerID:         req.OwnerID,
		Language:        req.Language,
	})
	if err != nil {
		if IsValidationError(err) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "WRITE_FAILED", err.Error(), nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, book)
}

// List handles GET /books.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := ListQuery{Search: query.Get("search")}

	if raw := query.Get("genreId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "genreId must be an integer", nil)
			return
		}
		q.GenreID = &id
	}
	if raw := query.Get("villageId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "villageId must be an integer", nil)
			return
		}
		q.VillageID = &id
	}

	books, err := h.svc.List(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSONSuccess(w, r, books, map[string]any{"count": len(books)})
}
