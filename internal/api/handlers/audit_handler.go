package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/pkg/response"
)

type AuditHandler struct {
	service *application.AuditService
}

func NewAuditHandler(service *application.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Audit entries filtered by optional parameters, newest first.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        account_id    query     string   false  "Account ID"
// @Param        resource_type query     string   false  "Resource type" example("form")
// @Param        resource_id   query     string   false  "Resource ID"
// @Param        action        query     string   false  "Action" example("create")
// @Param        start_time    query     string   false  "RFC3339 lower bound" example("2025-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "RFC3339 upper bound" example("2025-02-01T00:00:00Z")
// @Param        limit         query     int      false  "Max records (default 50, max 500)" example(50)
// @Param        offset        query     int      false  "Offset for pagination" example(0)
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if v := c.Query("account_id"); v != "" {
		params.AccountID = &v
	}
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("resource_id"); v != "" {
		params.ResourceID = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}
	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	var err error
	if params.Limit, err = strconv.Atoi(c.DefaultQuery("limit", "0")); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid limit"})
		return
	}
	if params.Offset, err = strconv.Atoi(c.DefaultQuery("offset", "0")); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid offset"})
		return
	}

	logs, err := h.service.QueryAuditLogs(params)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
