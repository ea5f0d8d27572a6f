package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linskybing/form-console/internal/domain/form"
)

const (
	recentForms = 5
	barWidth    = 30
)

type dashboardPage struct {
	env     *env
	spinner spinner.Model
	loading int
	stats   *form.DashboardStats
	err     string
}

func newDashboardPage(e *env) *dashboardPage {
	return &dashboardPage{env: e, spinner: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

func (p *dashboardPage) Init() tea.Cmd {
	p.loading = 2
	p.err = ""
	ctx, backend, forms := p.env.ctx, p.env.backend, p.env.forms
	return tea.Batch(
		p.spinner.Tick,
		func() tea.Msg {
			stats, err := backend.DashboardStats(ctx)
			return statsMsg{stats: stats, err: err}
		},
		func() tea.Msg {
			return formsLoadedMsg{err: forms.Load(ctx)}
		},
	)
}

func (p *dashboardPage) Capturing() bool { return false }

func (p *dashboardPage) Help() string {
	return "r refresh · f forms · n new form · L sign out · q quit"
}

func (p *dashboardPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		p.loading--
		if msg.err != nil {
			p.err = msg.err.Error()
			return p, nil
		}
		p.stats = &msg.stats
	case formsLoadedMsg:
		p.loading--
	case spinner.TickMsg:
		if p.loading > 0 {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
	case tea.KeyMsg:
		if msg.String() == "r" && p.loading <= 0 {
			return p, p.Init()
		}
	}
	return p, nil
}

func (p *dashboardPage) View() string {
	s := p.env.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Dashboard") + "\n")

	if p.loading > 0 && p.stats == nil {
		b.WriteString(p.spinner.View() + " Loading…\n")
		return b.String()
	}
	if p.err != "" {
		b.WriteString(s.Error.Render(p.err) + "\n")
	}

	if st := p.stats; st != nil {
		cards := lipgloss.JoinHorizontal(lipgloss.Top,
			s.Card.Render(fmt.Sprintf("Active forms\n%d", st.ActiveForms)),
			s.Card.Render(fmt.Sprintf("Created this week\n%d", st.FormsThisWeek)),
			s.Card.Render(fmt.Sprintf("Administrators\n%d", st.Admins)),
		)
		b.WriteString(cards + "\n\n")

		b.WriteString(s.Subtitle.Render("Forms by month") + "\n")
		months := make([]bar, 0, len(st.FormsByMonth))
		for _, m := range st.FormsByMonth {
			months = append(months, bar{label: m.Month, value: m.Count})
		}
		b.WriteString(renderBars(s, months) + "\n")

		b.WriteString(s.Subtitle.Render("Weekly activity") + "\n")
		weeks := make([]bar, 0, len(st.WeeklyActivity))
		for _, w := range st.WeeklyActivity {
			weeks = append(weeks, bar{label: w.Week, value: w.FormsCreated})
		}
		b.WriteString(renderBars(s, weeks) + "\n")
	}

	b.WriteString(s.Subtitle.Render("Recent forms") + "\n")
	forms := p.env.forms.Forms()
	if len(forms) == 0 {
		b.WriteString(s.Muted.Render("No forms yet. Press n to create one.") + "\n")
	}
	for i, f := range forms {
		if i == recentForms {
			break
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", f.Title, s.Muted.Render(f.CreatedAt.Local().Format("Jan 2, 2006"))))
	}
	if msg := p.env.forms.Err(); msg != "" {
		b.WriteString(s.Error.Render(msg) + "\n")
	}
	return b.String()
}

type bar struct {
	label string
	value int
}

func renderBars(s Styles, bars []bar) string {
	if len(bars) == 0 {
		return s.Muted.Render("  no data") + "\n"
	}
	peak := 0
	for _, b := range bars {
		peak = max(peak, b.value)
	}

	var out strings.Builder
	for _, b := range bars {
		width := 0
		if peak > 0 {
			width = b.value * barWidth / peak
		}
		fmt.Fprintf(&out, "  %-9s %s %d\n", b.label, s.Bar.Render(strings.Repeat("█", width)), b.value)
	}
	return out.String()
}
