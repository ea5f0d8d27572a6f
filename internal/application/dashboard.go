package application

import (
	"slices"
	"time"

	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/internal/repository"
)

const (
	weeksOfActivity = 4
	week            = 7 * 24 * time.Hour
)

type DashboardService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{
		Repos: repos,
		now:   time.Now,
	}
}

// Stats summarises every form in the system, not only the caller's.
func (s *DashboardService) Stats() (form.DashboardStats, error) {
	times, err := s.Repos.Form.ListCreationTimes()
	if err != nil {
		return form.DashboardStats{}, err
	}
	admins, err := s.Repos.Account.CountAdmins()
	if err != nil {
		return form.DashboardStats{}, err
	}

	stats := ComputeStats(times, s.now())
	stats.Admins = admins
	return stats, nil
}

// ComputeStats derives the dashboard figures from form creation times.
// Months appear in chronological order. Weekly activity covers the four
// seven-day windows ending at now, oldest first, each labelled by its last day.
func ComputeStats(times []time.Time, now time.Time) form.DashboardStats {
	stats := form.DashboardStats{
		ActiveForms:    len(times),
		FormsByMonth:   []form.MonthCount{},
		WeeklyActivity: make([]form.WeekActivity, weeksOfActivity),
	}

	for i := range stats.WeeklyActivity {
		end := now.Add(-time.Duration(weeksOfActivity-1-i) * week)
		stats.WeeklyActivity[i].Week = end.Format("Jan 2")
	}

	monthIndex := make(map[string]int)
	weekAgo := now.Add(-week)
	windowStart := now.Add(-weeksOfActivity * week)

	for _, t := range sortedTimes(times) {
		if t.After(now) {
			continue
		}
		if !t.Before(weekAgo) {
			stats.FormsThisWeek++
		}

		label := t.Format("Jan 2006")
		idx, ok := monthIndex[label]
		if !ok {
			idx = len(stats.FormsByMonth)
			monthIndex[label] = idx
			stats.FormsByMonth = append(stats.FormsByMonth, form.MonthCount{Month: label})
		}
		stats.FormsByMonth[idx].Count++

		if t.After(windowStart) {
			age := now.Sub(t)
			bucket := weeksOfActivity - 1 - int(age/week)
			if bucket >= 0 && bucket < weeksOfActivity {
				stats.WeeklyActivity[bucket].FormsCreated++
			}
		}
	}

	return stats
}

func sortedTimes(times []time.Time) []time.Time {
	out := slices.Clone(times)
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}
