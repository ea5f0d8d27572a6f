package console

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/pkg/client"
)

type gateMsg Decision

type navigateMsg struct{ path string }

type signedInMsg struct{ identity client.Identity }

type signedOutMsg struct{ err error }

type loginFailedMsg struct{ err error }

type registeredMsg struct {
	message string
	err     error
}

type formsLoadedMsg struct{ err error }

type formSavedMsg struct {
	form form.Form
	err  error
}

type formDeletedMsg struct {
	id  string
	err error
}

type detailLoadedMsg struct{ err error }

type questionsMsg struct{ err error }

type statsMsg struct {
	stats form.DashboardStats
	err   error
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}
