package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"anoa.com/quarterdirectory/internal/dto"
	"anoa.com/quarterdirectory/internal/model"
	"anoa.com/quarterdirectory/internal/service"
	"anoa.com/quarterdirectory/pkg/response"
	"anoa.com/quarterdirectory/pkg/validator"
	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	service service.DirectoryService
}

func NewDirectoryHandler(service service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// GetDirectoryItems serves one page of the ranked directory listing.
func (h *DirectoryHandler) GetDirectoryItems(c *gin.Context) {
	var query dto.DirectoryItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.List(c.Request.Context(), service.DirectoryListRequest{
		PeriodKey: query.Period,
		Order:     query.Order,
		Ascending: query.Asc,
		Page:      query.Page,
		Name:      query.Name,
		Username:  query.Username,
		ViewerID:  response.GetViewerID(c),
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DirectoryItemsResponse{
		Items:     result.Items,
		TotalRows: result.TotalRows,
		LoadMore:  loadMorePath(c.Request.URL.Path, query),
	})
}

// GetPeriods lists the fixed period keys and which one is current, for
// clients building period tabs.
func (h *DirectoryHandler) GetPeriods(c *gin.Context) {
	periods := model.AllPeriods()
	keys := make([]string, 0, len(periods))
	for _, p := range periods {
		keys = append(keys, p.Key())
	}

	c.JSON(http.StatusOK, dto.PeriodsResponse{
		Periods:       keys,
		CurrentPeriod: model.CurrentPeriod(time.Now()).Key(),
	})
}

// loadMorePath echoes the query parameters with the page incremented.
func loadMorePath(path string, q dto.DirectoryItemsQuery) string {
	params := url.Values{}
	params.Set("period", q.Period)
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Asc {
		params.Set("asc", "true")
	}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.Username != "" {
		params.Set("username", q.Username)
	}
	params.Set("page", strconv.Itoa(q.Page+1))

	return path + "?" + params.Encode()
}
