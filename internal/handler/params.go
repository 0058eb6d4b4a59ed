package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/response"
)

// parseID reads a positive integer path parameter, writing a 400 when it is malformed
func parseID(c *gin.Context, name, label string) (uint, bool) {
	return parseUint(c, c.Param(name), label)
}

// parseQueryID reads a required positive integer query parameter
func parseQueryID(c *gin.Context, name, label string) (uint, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, fmt.Sprintf("Query parameter %s is required", name))
		return 0, false
	}
	return parseUint(c, raw, label)
}

func parseUint(c *gin.Context, raw, label string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, fmt.Sprintf("Invalid %s ID", label))
		return 0, false
	}
	return uint(id), true
}

// bindPage reads skip and limit. Out of range values are normalized by the services.
func bindPage(c *gin.Context) (dto.PaginationQuery, bool) {
	var page dto.PaginationQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "skip and limit must be integers")
		return page, false
	}
	return page, true
}

// bindJSON decodes and validates the request body, writing a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err)
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
