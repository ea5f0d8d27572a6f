package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linskybing/form-console/internal/domain/form"
)

// formsPage lists the caller's forms. Enter expands a form's questions
// inline; o opens the detail route instead.
type formsPage struct {
	env      *env
	spinner  spinner.Model
	loading  bool
	cursor   int
	expanded string
	inPanel  bool
	panel    *questionPanel
	editor   *formEditor
	confirm  *confirmPrompt
}

func newFormsPage(e *env) *formsPage {
	return &formsPage{
		env:     e,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		panel:   newQuestionPanel(e),
	}
}

func (p *formsPage) Init() tea.Cmd {
	p.loading = true
	ctx, forms := p.env.ctx, p.env.forms
	return tea.Batch(p.spinner.Tick, func() tea.Msg {
		return formsLoadedMsg{err: forms.Load(ctx)}
	})
}

func (p *formsPage) Capturing() bool {
	return p.editor != nil || p.confirm != nil || (p.inPanel && p.panel.capturing())
}

func (p *formsPage) Help() string {
	if p.inPanel {
		return p.panel.help() + " · esc back to forms"
	}
	return "↑/↓ select · enter questions · o open · e edit · x delete · n new · r reload · d dashboard · L sign out · q quit"
}

func (p *formsPage) selected() (form.Form, bool) {
	forms := p.env.forms.Forms()
	if p.cursor < 0 || p.cursor >= len(forms) {
		return form.Form{}, false
	}
	return forms[p.cursor], true
}

func (p *formsPage) clamp() {
	if n := len(p.env.forms.Forms()); p.cursor >= n {
		p.cursor = max(n-1, 0)
	}
}

func (p *formsPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case formsLoadedMsg:
		p.loading = false
		p.clamp()
	case formSavedMsg:
		if msg.err == nil {
			p.editor = nil
		}
	case formDeletedMsg:
		if msg.err == nil && msg.id == p.expanded {
			p.expanded, p.inPanel = "", false
			_ = p.env.questions.Select(p.env.ctx, "")
		}
		p.clamp()
	case questionsMsg:
		p.panel.result(msg)
	case spinner.TickMsg:
		if p.loading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *formsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.confirm != nil {
		done, cmd := p.confirm.update(msg)
		if done {
			p.confirm = nil
		}
		return cmd
	}

	if p.editor != nil {
		switch msg.String() {
		case "esc":
			p.editor = nil
			p.env.forms.ClearErr()
			return nil
		case "enter":
			return p.saveForm()
		}
		return p.editor.update(msg)
	}

	if p.inPanel {
		if msg.String() == "esc" && !p.panel.capturing() {
			p.inPanel = false
			return nil
		}
		if handled, cmd := p.panel.handleKey(msg); handled {
			return cmd
		}
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.env.forms.Forms())-1 {
			p.cursor++
		}
	case "enter":
		f, ok := p.selected()
		if !ok {
			return nil
		}
		if p.expanded == f.ID {
			p.expanded = ""
			return nil
		}
		p.expanded, p.inPanel = f.ID, true
		p.panel.cursor = 0
		ctx, qs, id := p.env.ctx, p.env.questions, f.ID
		return func() tea.Msg { return questionsMsg{err: qs.Select(ctx, id)} }
	case "o":
		if f, ok := p.selected(); ok {
			return navigate(FormPath(f.ID))
		}
	case "e":
		if f, ok := p.selected(); ok {
			p.env.forms.ClearErr()
			p.editor = newFormEditor(f)
		}
	case "x":
		if f, ok := p.selected(); ok {
			p.confirm = deleteFormPrompt(p.env, f)
		}
	case "r":
		if !p.loading {
			return p.Init()
		}
	}
	return nil
}

func (p *formsPage) saveForm() tea.Cmd {
	ctx, forms := p.env.ctx, p.env.forms
	id, patch := p.editor.target.ID, p.editor.patch()
	return func() tea.Msg {
		f, err := forms.Update(ctx, id, patch)
		return formSavedMsg{form: f, err: err}
	}
}

func deleteFormPrompt(e *env, f form.Form) *confirmPrompt {
	ctx, forms, id := e.ctx, e.forms, f.ID
	return &confirmPrompt{
		label: fmt.Sprintf("Delete form %q and all of its questions?", f.Title),
		run: func(confirmed bool) tea.Cmd {
			return func() tea.Msg {
				return formDeletedMsg{id: id, err: forms.Delete(ctx, id, confirmed)}
			}
		},
	}
}

func (p *formsPage) View() string {
	s := p.env.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Forms") + "\n")

	forms := p.env.forms.Forms()
	if p.loading && len(forms) == 0 {
		b.WriteString(p.spinner.View() + " Loading forms…\n")
		return b.String()
	}
	if len(forms) == 0 {
		b.WriteString(s.Muted.Render("No forms yet. Press n to create one.") + "\n")
	}

	for i, f := range forms {
		line := f.Title
		if f.Description != nil && *f.Description != "" {
			line += "  " + s.Muted.Render(*f.Description)
		}
		line += "  " + s.Muted.Render(f.CreatedAt.Local().Format("Jan 2, 2006"))
		if i == p.cursor && !p.inPanel {
			line = s.Selected.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")

		if f.ID == p.expanded {
			for _, l := range strings.Split(strings.TrimRight(p.panel.view(p.inPanel), "\n"), "\n") {
				b.WriteString("    " + l + "\n")
			}
		}
	}

	if p.editor != nil {
		b.WriteString("\n" + p.editor.view(s) + "\n")
	}
	if p.confirm != nil {
		b.WriteString("\n" + p.confirm.view(s) + "\n")
	}
	if msg := p.env.forms.Err(); msg != "" {
		b.WriteString(s.Error.Render(msg) + "\n")
	}
	return b.String()
}
