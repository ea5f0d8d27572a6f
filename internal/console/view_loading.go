package console

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// loadingPage is shown while the session gate is pending.
type loadingPage struct {
	env     *env
	spinner spinner.Model
}

func newLoadingPage(e *env) *loadingPage {
	return &loadingPage{env: e, spinner: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

func (p *loadingPage) Init() tea.Cmd { return p.spinner.Tick }

func (p *loadingPage) Capturing() bool { return false }

func (p *loadingPage) Help() string { return "ctrl+c quit" }

func (p *loadingPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *loadingPage) View() string {
	return p.spinner.View() + " Checking session…"
}
