package barcode

import (
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"

	"villagebooks/internal/enrich"
	"villagebooks/internal/httpx"
)

type HTTPHandler struct {
	chain    *Chain
	enricher *enrich.Service
}

func NewHTTPHandler(chain *Chain, enricher *enrich.Service) *HTTPHandler {
	return &HTTPHandler{chain: chain, enricher: enricher}
}

type scanResponse struct {
	Barcode string        `json:"barcode,omitempty"`
	ISBN    string        `json:"isbn,omitempty"`
	Record  enrich.Record `json:"record"`
	Status  string        `json:"status"`
}

// Scan handles POST /books/scan: decode the uploaded photo, then enrich
// the decoded ISBN. A failed decode is a successful response with an
// advisory status — the form falls back to manual entry.
func (h *HTTPHandler) Scan(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "image file is required", nil)
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "cannot decode image: "+err.Error(), nil)
		return
	}

	text, err := h.chain.Decode(img)
	if err != nil {
		httpx.JSONSuccess(w, r, scanResponse{
			Status: "could not read a barcode from the photo; try a sharper picture or enter the details manually",
		}, nil)
		return
	}

	res := h.enricher.Lookup(r.Context(), text)
	httpx.JSONSuccess(w, r, scanResponse{
		Barcode: text,
		ISBN:    res.ISBN,
		Record:  res.Record,
		Status:  res.Status,
	}, nil)
}

// ScanStream handles POST /books/scan/stream: a live capture relay posts
// frames as multipart parts and the first decoded frame wins. The scan
// session ends with the request; client disconnect cancels it.
func (h *HTTPHandler) ScanStream(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "multipart frame stream is required", nil)
		return
	}

	session := NewSession(h.chain, &multipartFrameSource{mr: mr})

	var decoded string
	if err := session.Run(r.Context(), func(text string) { decoded = text }); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "frame stream aborted: "+err.Error(), nil)
		return
	}

	if decoded == "" {
		httpx.JSONSuccess(w, r, scanResponse{
			Status: "no barcode found in the streamed frames; enter the details manually",
		}, nil)
		return
	}

	res := h.enricher.Lookup(r.Context(), decoded)
	httpx.JSONSuccess(w, r, scanResponse{
		Barcode: decoded,
		ISBN:    res.ISBN,
		Record:  res.Record,
		Status:  res.Status,
	}, nil)
}

// multipartFrameSource adapts a multipart body into session frames.
// Parts that are not decodable images are skipped.
type multipartFrameSource struct {
	mr *multipart.Reader
}

func (s *multipartFrameSource) NextFrame(ctx context.Context) (image.Image, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := s.mr.NextPart()
		if err != nil {
			return nil, err // io.EOF when the stream ends
		}
		img, _, err := image.Decode(part)
		_ = part.Close()
		if err != nil {
			continue
		}
		return img, nil
	}
}

func (s *multipartFrameSource) Close() error {
	return nil
}
