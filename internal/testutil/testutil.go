package testutil

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
)

// NewRequest builds a JSON request for handler tests.
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewImageUploadRequest builds a multipart request carrying img under the
// given field name, PNG-encoded.
func NewImageUploadRequest(path, field string, img image.Image) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile(field, "barcode.png")
	_ = png.Encode(fw, img)
	_ = mw.Close()

	r := httptest.NewRequest(http.MethodPost, path, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

// NewFrameStreamRequest builds a multipart request whose parts are the
// given frames in order, PNG-encoded.
func NewFrameStreamRequest(path string, frames ...image.Image) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, frame := range frames {
		fw, _ := mw.CreateFormFile("frame", "frame.png")
		_ = png.Encode(fw, frame)
	}
	_ = mw.Close()

	r := httptest.NewRequest(http.MethodPost, path, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

// RecordResponse is a decoded recorder result.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Data returns the envelope "data" member as a map, or nil.
func (r RecordResponse) Data() map[string]any {
	if d, ok := r.Body["data"].(map[string]any); ok {
		return d
	}
	return nil
}
