package application

import (
	"github.com/linskybing/form-console/internal/domain/audit"
	"github.com/linskybing/form-console/internal/repository"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 {
		params.Limit = defaultAuditLimit
	}
	if params.Limit > maxAuditLimit {
		params.Limit = maxAuditLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

// CleanupOldLogs removes entries older than days and returns how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
