// Package console is the terminal administration console: the session gate,
// the route surface and the views over the forms and questions stores.
package console

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linskybing/form-console/internal/console/store"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/pkg/client"
	"go.uber.org/zap"
)

var ErrNotAdmin = errors.New("account is not registered as an administrator")

// Backend is everything the console needs from form-api. *client.Client
// implements it.
type Backend interface {
	SessionSource
	store.FormsBackend
	store.QuestionsBackend

	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (client.Identity, error)
	Logout(ctx context.Context) error
	Token() string
	DashboardStats(ctx context.Context) (form.DashboardStats, error)
}

type Options struct {
	// InitialPath is the route requested at start, "/" when empty.
	InitialPath string
	// SaveToken persists the session token; "" means signed out.
	SaveToken func(token string) error
	Log       *zap.Logger
}

// App is the root bubbletea model. It owns the router and hands the gate's
// identity to each page it builds.
type App struct {
	ctx       context.Context
	backend   Backend
	gate      *Gate
	router    *Router
	saveToken func(string) error
	log       *zap.Logger
	styles    Styles

	forms     *store.FormsStore
	questions *store.QuestionsStore

	decision Decision
	notice   string
	route    Route
	page     page
	width    int
	height   int
}

// NewApp builds the console around a started gate.
func NewApp(ctx context.Context, backend Backend, gate *Gate, opts Options) (*App, error) {
	path := opts.InitialPath
	if path == "" {
		path = PathRoot
	}
	router, err := NewRouter(path)
	if err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	save := opts.SaveToken
	if save == nil {
		save = func(string) error { return nil }
	}

	return &App{
		ctx:       ctx,
		backend:   backend,
		gate:      gate,
		router:    router,
		saveToken: save,
		log:       log,
		styles:    DefaultStyles(),
		forms:     store.NewFormsStore(backend),
		questions: store.NewQuestionsStore(backend),
		decision:  gate.Current(),
	}, nil
}

func (a *App) Init() tea.Cmd {
	return a.resolve(true)
}

// Run drives the terminal program and forwards gate decisions into it until
// the program exits. The gate is closed on return.
func (a *App) Run(opts ...tea.ProgramOption) error {
	p := tea.NewProgram(a, opts...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for d := range a.gate.Events() {
			p.Send(gateMsg(d))
		}
	}()

	_, err := p.Run()
	a.gate.Close()
	<-done
	return err
}

// Route returns the route currently rendered.
func (a *App) Route() Route {
	return a.route
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.route.Protected() && a.route.Name != RouteLoading && !a.page.Capturing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "d":
				return a, navigate(PathDashboard)
			case "f":
				return a, navigate(PathForms)
			case "n":
				return a, navigate(PathCreateForm)
			case "L":
				return a, a.logout()
			}
		}

	case gateMsg:
		return a, a.decide(Decision(msg))

	case navigateMsg:
		if err := a.router.Navigate(msg.path); err != nil {
			a.log.Warn("navigation failed", zap.Error(err))
			return a, nil
		}
		return a, a.resolve(true)

	case signedInMsg:
		a.log.Info("signed in", zap.String("account_id", msg.identity.AccountID))
		a.notice = ""
		if err := a.saveToken(a.backend.Token()); err != nil {
			a.log.Warn("failed to save session token", zap.Error(err))
		}
		a.gate.Refresh()
		return a, nil

	case signedOutMsg:
		if msg.err != nil {
			a.log.Warn("sign out failed", zap.Error(msg.err))
		}
		if err := a.saveToken(""); err != nil {
			a.log.Warn("failed to clear session token", zap.Error(err))
		}
		a.forms = store.NewFormsStore(a.backend)
		a.questions = store.NewQuestionsStore(a.backend)
		a.gate.Refresh()
		return a, nil
	}

	if a.page == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// decide applies a gate decision. A session that belongs to a non-admin
// account is signed out with a notice on the login view. The login page is
// rebuilt even when it is already showing so a pending submit is cleared.
func (a *App) decide(d Decision) tea.Cmd {
	if d.State == GateAuthenticated && !d.Identity.IsAdmin {
		a.notice = ErrNotAdmin.Error()
		a.decision = Decision{State: GateAnonymous, Err: ErrNotAdmin}
		return tea.Batch(a.resolve(true), a.logout())
	}
	a.decision = d
	return a.resolve(false)
}

// resolve rebuilds the page when the route to render changed, or always when
// force is set.
func (a *App) resolve(force bool) tea.Cmd {
	route := a.router.Resolve(a.decision.State)
	if !force && a.page != nil && route == a.route {
		return nil
	}
	a.route = route
	a.page = a.buildPage(route)
	return a.page.Init()
}

func (a *App) buildPage(r Route) page {
	e := &env{
		ctx:       a.ctx,
		backend:   a.backend,
		forms:     a.forms,
		questions: a.questions,
		identity:  a.decision.Identity,
		styles:    a.styles,
		width:     a.width,
		height:    a.height,
	}
	switch r.Name {
	case RouteLogin:
		return newLoginPage(e, a.notice)
	case RouteDashboard:
		return newDashboardPage(e)
	case RouteForms:
		return newFormsPage(e)
	case RouteFormDetail:
		return newDetailPage(e, r.FormID)
	case RouteCreateForm:
		return newCreatePage(e)
	}
	return newLoadingPage(e)
}

func (a *App) logout() tea.Cmd {
	ctx, backend := a.ctx, a.backend
	return func() tea.Msg {
		return signedOutMsg{err: backend.Logout(ctx)}
	}
}

func (a *App) View() string {
	s := a.styles
	var b strings.Builder

	header := "Form Console"
	if a.decision.State == GateAuthenticated {
		header += " · " + a.decision.Identity.Email
	}
	if a.route.Path != "" {
		header += " · " + a.route.Path
	}
	b.WriteString(s.Header.Render(header) + "\n\n")

	if a.page != nil {
		b.WriteString(a.page.View())
		b.WriteString(s.Help.Render(a.page.Help()))
	}
	return b.String()
}
