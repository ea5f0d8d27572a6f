package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/application"
)

type DashboardHandler struct {
	service *application.DashboardService
}

func NewDashboardHandler(service *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats godoc
// @Summary Dashboard statistics
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} form.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
