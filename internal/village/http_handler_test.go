package village

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"villagebooks/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	villages []Village
	err      error
}

func (f *fakeRepo) List(ctx context.Context) ([]Village, error) {
	return f.villages, f.err
}

func TestListHandler(t *testing.T) {
	h := NewHTTPHandler(&fakeRepo{villages: []Village{
		{ID: 1, Name: "Borgo Antico"},
		{ID: 2, Name: "Pieve Alta"},
	}})

	r := testutil.NewRequest(http.MethodGet, "/villages", nil)
	w := httptest.NewRecorder()
	h.List(w, r)

	res := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, res.Code)

	items := res.Body["data"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Borgo Antico", items[0].(map[string]any)["name"])
}

func TestListHandler_Empty(t *testing.T) {
	h := NewHTTPHandler(&fakeRepo{})

	r := testutil.NewRequest(http.MethodGet, "/villages", nil)
	w := httptest.NewRecorder()
	h.List(w, r)

	res := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, res.Code)
	items, ok := res.Body["data"].([]any)
	require.True(t, ok, "empty list must encode as [], not null")
	assert.Empty(t, items)
}

func TestListHandler_StoreError(t *testing.T) {
	h := NewHTTPHandler(&fakeRepo{err: errors.New("connection refused")})

	r := testutil.NewRequest(http.MethodGet, "/villages", nil)
	w := httptest.NewRecorder()
	h.List(w, r)

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusInternalServerError, res.Code)
}
