package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/domain/audit"
	"github.com/linskybing/form-console/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// AuditLogger receives audit write failures. main replaces it with the
// service logger.
var AuditLogger = zap.NewNop()

var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	// Extract request data synchronously; the gin context is recycled after the handler returns.
	accountID, _ := GetAccountIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(accountID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repos); err != nil {
			AuditLogger.Warn("audit write failed",
				zap.String("action", action),
				zap.String("resource_type", resourceType),
				zap.String("resource_id", resourceID),
				zap.Error(err),
			)
		}
	}()
}

var LogAudit = func(
	accountID string,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repos repository.AuditRepo,
) error {
	auditLog := &audit.AuditLog{
		AccountID:    accountID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      marshalAuditData(before, "old_data"),
		NewData:      marshalAuditData(after, "new_data"),
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}

	return repos.CreateAuditLog(auditLog)
}

func marshalAuditData(v any, field string) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		AuditLogger.Warn("audit marshal failed", zap.String("field", field), zap.Error(err))
		return nil
	}
	return datatypes.JSON(data)
}
