package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"media-catalog-api/internal/database"
	"media-catalog-api/internal/response"
	"media-catalog-api/internal/service"
)

type HealthHandler struct {
	db           *gorm.DB
	statsService service.StatsService
}

func NewHealthHandler(db *gorm.DB, statsService service.StatsService) *HealthHandler {
	return &HealthHandler{db: db, statsService: statsService}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Fails while the database is unreachable
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} response.ErrorResponse
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		_ = c.Error(err)
		response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeUnavailable, "Database is not reachable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Stats godoc
// @Summary      Row counts per catalog table
// @Tags         health
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.CatalogStats}
// @Router       /stats [get]
func (h *HealthHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Stats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, stats)
}
