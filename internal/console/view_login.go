package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginPage struct {
	env      *env
	email    textinput.Model
	password textinput.Model
	focus    int
	register bool
	busy     bool
	err      string
	info     string
}

func newLoginPage(e *env, notice string) *loginPage {
	p := &loginPage{
		env:      e,
		email:    newInput("admin@example.com", 255),
		password: newInput("password", 128),
		err:      notice,
	}
	p.password.EchoMode = textinput.EchoPassword
	p.password.EchoCharacter = '•'
	focusInputs(0, &p.email, &p.password)
	return p
}

func (p *loginPage) Init() tea.Cmd { return nil }

func (p *loginPage) Capturing() bool { return true }

func (p *loginPage) Help() string {
	if p.register {
		return "tab switch field · enter create account · ctrl+r back to sign in · ctrl+c quit"
	}
	return "tab switch field · enter sign in · ctrl+r create account · ctrl+c quit"
}

func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case loginFailedMsg:
		p.busy = false
		p.err = msg.err.Error()
		return p, nil
	case registeredMsg:
		p.busy = false
		if msg.err != nil {
			p.err = msg.err.Error()
			return p, nil
		}
		p.err = ""
		p.info = msg.message
		p.register = false
		p.password.SetValue("")
		return p, nil
	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			p.focus = 1 - p.focus
			focusInputs(p.focus, &p.email, &p.password)
			return p, nil
		case "ctrl+r":
			p.register = !p.register
			p.err, p.info = "", ""
			return p, nil
		case "enter":
			return p, p.submit()
		}
		var cmd tea.Cmd
		if p.focus == 0 {
			p.email, cmd = p.email.Update(msg)
		} else {
			p.password, cmd = p.password.Update(msg)
		}
		return p, cmd
	}
	return p, nil
}

func (p *loginPage) submit() tea.Cmd {
	email := strings.TrimSpace(p.email.Value())
	password := p.password.Value()
	if email == "" || password == "" {
		p.err = "email and password are required"
		return nil
	}

	p.busy = true
	p.err, p.info = "", ""
	ctx, backend := p.env.ctx, p.env.backend

	if p.register {
		return func() tea.Msg {
			message, err := backend.Register(ctx, email, password)
			return registeredMsg{message: message, err: err}
		}
	}
	return func() tea.Msg {
		id, err := backend.Login(ctx, email, password)
		if err != nil {
			return loginFailedMsg{err: err}
		}
		return signedInMsg{identity: id}
	}
}

func (p *loginPage) View() string {
	s := p.env.styles
	var b strings.Builder

	title := "Sign in"
	if p.register {
		title = "Create account"
	}
	b.WriteString(s.Title.Render(title) + "\n")
	b.WriteString(s.Label.Render(marker(p.focus == 0)+"Email") + p.email.View() + "\n")
	b.WriteString(s.Label.Render(marker(p.focus == 1)+"Password") + p.password.View() + "\n\n")

	switch {
	case p.busy:
		b.WriteString(s.Muted.Render("Please wait…") + "\n")
	case p.err != "":
		b.WriteString(s.Error.Render(p.err) + "\n")
	case p.info != "":
		b.WriteString(s.Info.Render(p.info) + "\n")
	}
	return b.String()
}
