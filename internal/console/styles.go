package console

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6b7280")
	colorDanger  = lipgloss.Color("#e53935")
	colorInfo    = lipgloss.Color("#2196F3")
	colorBorder  = lipgloss.Color("#2a3850")
)

type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Card     lipgloss.Style
	Bar      lipgloss.Style
	Help     lipgloss.Style
	Prompt   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f2f2f2")).Background(colorBorder).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(colorMuted).Width(14),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Error:    lipgloss.NewStyle().Foreground(colorDanger),
		Info:     lipgloss.NewStyle().Foreground(colorInfo),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 2).MarginRight(1),
		Bar:      lipgloss.NewStyle().Foreground(colorPrimary),
		Help:     lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(colorDanger),
	}
}
