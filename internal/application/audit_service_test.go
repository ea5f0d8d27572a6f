package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/form-console/internal/domain/audit"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAuditLogs_ClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	audits := mock.NewMockAuditRepo(ctrl)
	svc := NewAuditService(&repository.Repos{Audit: audits})

	tests := []struct {
		name       string
		in         repository.AuditQueryParams
		wantLimit  int
		wantOffset int
	}{
		{"defaults", repository.AuditQueryParams{}, defaultAuditLimit, 0},
		{"too large", repository.AuditQueryParams{Limit: 10000, Offset: 5}, maxAuditLimit, 5},
		{"negative offset", repository.AuditQueryParams{Limit: 10, Offset: -1}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audits.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(func(p repository.AuditQueryParams) ([]audit.AuditLog, error) {
				assert.Equal(t, tt.wantLimit, p.Limit)
				assert.Equal(t, tt.wantOffset, p.Offset)
				return []audit.AuditLog{}, nil
			})
			_, err := svc.QueryAuditLogs(tt.in)
			require.NoError(t, err)
		})
	}
}

func TestCleanupOldLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	audits := mock.NewMockAuditRepo(ctrl)
	svc := NewAuditService(&repository.Repos{Audit: audits})

	audits.EXPECT().DeleteOldAuditLogs(30).Return(int64(7), nil)

	n, err := svc.CleanupOldLogs(30)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
