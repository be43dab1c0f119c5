package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cribinfo/internal/domain"
	"cribinfo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCityReader struct {
	cities []string
	areas  []string
	err    error
}

func (s *stubCityReader) Cities(context.Context) ([]string, error) {
	return s.cities, s.err
}

func (s *stubCityReader) AreasByCity(context.Context, string) ([]string, error) {
	return s.areas, s.err
}

func newCityRouter(repo *stubCityReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCityHandler(repo, testLogger())

	router := gin.New()
	router.GET("/api/v1/cities", h.Cities)
	router.GET("/api/v1/cities/:city/areas", h.Areas)
	return router
}

func TestCitiesEndpoint(t *testing.T) {
	router := newCityRouter(&stubCityReader{cities: []string{"bangalore", "mumbai"}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"bangalore", "mumbai"}, resp.Cities)
}

func TestCitiesEndpointEmptyIsArray(t *testing.T) {
	router := newCityRouter(&stubCityReader{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cities": []}`, w.Body.String())
}

func TestAreasEndpoint(t *testing.T) {
	router := newCityRouter(&stubCityReader{areas: []string{"Bandra West", "Powai"}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cities/mumbai/areas", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.AreasResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mumbai", resp.City)
	assert.Equal(t, []string{"Bandra West", "Powai"}, resp.Areas)
}

func TestAreasEndpointStoreOutage(t *testing.T) {
	router := newCityRouter(&stubCityReader{err: domain.Wrap(domain.ErrStore, "areas", assert.AnError)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cities/mumbai/areas", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
