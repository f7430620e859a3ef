package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paginationParams reads page and page_size query parameters, falling back to
// defaults on missing or unparseable values. Range clamping happens in the
// service layer.
func paginationParams(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", "20")); err == nil {
		pageSize = v
	}
	return page, pageSize
}
