package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// pageFilter reads the common page/limit query parameters. Out-of-range
// values are normalized by the service layer, not here.
func pageFilter(c echo.Context) ports.PageFilter {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.PageFilter{Page: page, Limit: limit}
}

// listResponse is the shared envelope for paginated collections.
type listResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
