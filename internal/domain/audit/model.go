package audit

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	AccountID    string         `json:"account_id" gorm:"size:36;index"`
	Action       string         `json:"action" gorm:"size:32;index"`
	ResourceType string         `json:"resource_type" gorm:"size:32;index"`
	ResourceID   string         `json:"resource_id" gorm:"size:64"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `json:"ip_address" gorm:"size:64"`
	UserAgent    string         `json:"user_agent" gorm:"type:text"`
	Description  string         `json:"description" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
