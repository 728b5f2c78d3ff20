package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"anoa.com/quarterdirectory/internal/dto"
	"anoa.com/quarterdirectory/internal/service"
	"anoa.com/quarterdirectory/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectoryService struct {
	result  *dto.DirectoryListResult
	err     error
	lastReq service.DirectoryListRequest
}

func (s *stubDirectoryService) List(_ context.Context, req service.DirectoryListRequest) (*dto.DirectoryListResult, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRouter(stub *stubDirectoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDirectoryHandler(stub)
	router.GET("/api/directory_items", h.GetDirectoryItems)
	router.GET("/api/periods", h.GetPeriods)
	return router
}

func TestGetDirectoryItemsEchoesQueryInLoadMore(t *testing.T) {
	timeRead := "2h"
	stub := &stubDirectoryService{result: &dto.DirectoryListResult{
		Items: []dto.DirectoryItemResponse{{
			ID:                 7,
			User:               dto.DirectoryUserResponse{Username: "anna"},
			TopicCount:         3,
			PostCount:          4,
			TotalParticipation: 7,
			TimeRead:           &timeRead,
		}},
		TotalRows: 120,
	}}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/directory_items?period=first_quarterly&order=post_count&asc=true&page=2&name=an", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.DirectoryItemsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, int64(120), body.TotalRows)
	require.Len(t, body.Items, 1)
	assert.Equal(t, int64(7), body.Items[0].ID)

	more, err := url.Parse(body.LoadMore)
	require.NoError(t, err)
	assert.Equal(t, "/api/directory_items", more.Path)
	params := more.Query()
	assert.Equal(t, "first_quarterly", params.Get("period"))
	assert.Equal(t, "post_count", params.Get("order"))
	assert.Equal(t, "true", params.Get("asc"))
	assert.Equal(t, "an", params.Get("name"))
	assert.Equal(t, "3", params.Get("page"))

	assert.Equal(t, "first_quarterly", stub.lastReq.PeriodKey)
	assert.Equal(t, 2, stub.lastReq.Page)
	assert.True(t, stub.lastReq.Ascending)
}

func TestGetDirectoryItemsRequiresPeriod(t *testing.T) {
	router := newTestRouter(&stubDirectoryService{result: &dto.DirectoryListResult{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/directory_items", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDirectoryItemsMapsAccessErrors(t *testing.T) {
	router := newTestRouter(&stubDirectoryService{err: apperror.ErrDirectoryDisabled})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/directory_items?period=first_quarterly", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetPeriods(t *testing.T) {
	router := newTestRouter(&stubDirectoryService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/periods", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.PeriodsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Periods, 4)
	assert.Contains(t, body.Periods, body.CurrentPeriod)
}
