package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cribinfo/internal/domain"
	"cribinfo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPropertyReader struct {
	property *model.Property
	list     []model.Property
	err      error
	gotIDs   []uuid.UUID
}

func (s *stubPropertyReader) GetByID(_ context.Context, id uuid.UUID) (*model.Property, error) {
	s.gotIDs = []uuid.UUID{id}
	return s.property, s.err
}

func (s *stubPropertyReader) GetByIDs(_ context.Context, ids []uuid.UUID) ([]model.Property, error) {
	s.gotIDs = ids
	return s.list, s.err
}

func newPropertyRouter(repo *stubPropertyReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPropertyHandler(repo, testLogger())

	router := gin.New()
	router.GET("/api/v1/properties/:id", h.GetProperty)
	router.POST("/api/v1/compare", h.Compare)
	return router
}

func TestGetProperty(t *testing.T) {
	id := uuid.New()
	repo := &stubPropertyReader{property: &model.Property{ID: id, City: "delhi"}}
	router := newPropertyRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+id.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, []uuid.UUID{id}, repo.gotIDs)
}

func TestGetPropertyInvalidID(t *testing.T) {
	router := newPropertyRouter(&stubPropertyReader{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPropertyNotFound(t *testing.T) {
	repo := &stubPropertyReader{err: domain.Wrap(domain.ErrNotFound, "get", assert.AnError)}
	router := newPropertyRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func doCompare(router *gin.Engine, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCompare(t *testing.T) {
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	repo := &stubPropertyReader{list: []model.Property{{}, {}, {}}}
	router := newPropertyRouter(repo)

	w := doCompare(router, model.CompareRequest{PropertyIDs: ids})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Properties, 3)
	assert.Len(t, repo.gotIDs, 3)
}

func TestCompareIDCountBounds(t *testing.T) {
	router := newPropertyRouter(&stubPropertyReader{})

	one := []string{uuid.NewString()}
	w := doCompare(router, model.CompareRequest{PropertyIDs: one})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	six := make([]string, 6)
	for i := range six {
		six[i] = uuid.NewString()
	}
	w = doCompare(router, model.CompareRequest{PropertyIDs: six})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareInvalidID(t *testing.T) {
	router := newPropertyRouter(&stubPropertyReader{})

	w := doCompare(router, model.CompareRequest{PropertyIDs: []string{uuid.NewString(), "nope"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
