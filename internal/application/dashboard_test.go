package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 3, 29, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	times := []time.Time{
		now.Add(-1 * day),
		now.Add(-40 * day), // Feb 17, outside the four-week window
		now.Add(-3 * day),
		now.Add(-10 * day),
		now.Add(-27 * day),
		now.Add(-90 * day), // Dec 29
		now.Add(time.Hour), // clock skew, ignored
	}

	stats := ComputeStats(times, now)

	assert.Equal(t, len(times), stats.ActiveForms)
	assert.Equal(t, 2, stats.FormsThisWeek)
	assert.Equal(t, []form.MonthCount{
		{Month: "Dec 2024", Count: 1},
		{Month: "Feb 2025", Count: 1},
		{Month: "Mar 2025", Count: 4},
	}, stats.FormsByMonth)
	assert.Equal(t, []form.WeekActivity{
		{Week: "Mar 8", FormsCreated: 1},
		{Week: "Mar 15", FormsCreated: 0},
		{Week: "Mar 22", FormsCreated: 1},
		{Week: "Mar 29", FormsCreated: 2},
	}, stats.WeeklyActivity)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	assert.Zero(t, stats.ActiveForms)
	assert.NotNil(t, stats.FormsByMonth)
	assert.Empty(t, stats.FormsByMonth)
	require.Len(t, stats.WeeklyActivity, 4)
	assert.Equal(t, "Dec 25", stats.WeeklyActivity[0].Week)
	assert.Equal(t, "Jan 15", stats.WeeklyActivity[3].Week)
}

func TestDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	forms := mock.NewMockFormRepo(ctrl)
	accounts := mock.NewMockAccountRepo(ctrl)
	now := time.Date(2025, 3, 29, 12, 0, 0, 0, time.UTC)

	svc := NewDashboardService(&repository.Repos{Form: forms, Account: accounts})
	svc.now = func() time.Time { return now }

	forms.EXPECT().ListCreationTimes().Return([]time.Time{now.Add(-time.Hour)}, nil)
	accounts.EXPECT().CountAdmins().Return(int64(3), nil)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveForms)
	assert.Equal(t, int64(3), stats.Admins)
	assert.Equal(t, 1, stats.WeeklyActivity[3].FormsCreated)
}

func TestDashboardStats_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	forms := mock.NewMockFormRepo(ctrl)
	svc := NewDashboardService(&repository.Repos{Form: forms})

	forms.EXPECT().ListCreationTimes().Return(nil, errors.New("db down"))

	_, err := svc.Stats()
	assert.EqualError(t, err, "db down")
}
