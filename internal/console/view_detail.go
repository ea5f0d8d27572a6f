package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// detailPage is /forms/:formId: the form header plus its questions.
type detailPage struct {
	env     *env
	formID  string
	spinner spinner.Model
	loading bool
	err     string
	panel   *questionPanel
	editor  *formEditor
	confirm *confirmPrompt
}

func newDetailPage(e *env, formID string) *detailPage {
	return &detailPage{
		env:     e,
		formID:  formID,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		panel:   newQuestionPanel(e),
	}
}

func (p *detailPage) Init() tea.Cmd {
	p.loading = true
	ctx, forms, qs, id := p.env.ctx, p.env.forms, p.env.questions, p.formID
	return tea.Batch(p.spinner.Tick, func() tea.Msg {
		if !forms.Loaded() {
			if err := forms.Load(ctx); err != nil {
				return detailLoadedMsg{err: err}
			}
		}
		// The list may predate this form, so ask for it directly.
		if _, ok := forms.Get(id); !ok {
			if _, err := forms.Fetch(ctx, id); err != nil {
				return detailLoadedMsg{err: err}
			}
		}
		return detailLoadedMsg{err: qs.Select(ctx, id)}
	})
}

func (p *detailPage) Capturing() bool {
	return p.editor != nil || p.confirm != nil || p.panel.capturing()
}

func (p *detailPage) Help() string {
	return p.panel.help() + " · t edit form · D delete form · esc back · q quit"
}

func (p *detailPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err = msg.err.Error()
		}
	case questionsMsg:
		p.panel.result(msg)
	case formSavedMsg:
		if msg.err == nil {
			p.editor = nil
		}
	case formDeletedMsg:
		if msg.err == nil {
			return p, navigate(PathForms)
		}
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

func (p *detailPage) handleKey(msg tea.KeyMsg) tea.Cmd {
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
			ctx, forms := p.env.ctx, p.env.forms
			id, patch := p.formID, p.editor.patch()
			return func() tea.Msg {
				f, err := forms.Update(ctx, id, patch)
				return formSavedMsg{form: f, err: err}
			}
		}
		return p.editor.update(msg)
	}

	if handled, cmd := p.panel.handleKey(msg); handled {
		return cmd
	}

	switch msg.String() {
	case "esc", "backspace":
		return navigate(PathForms)
	case "t":
		if f, ok := p.env.forms.Get(p.formID); ok {
			p.env.forms.ClearErr()
			p.editor = newFormEditor(f)
		}
	case "D":
		if f, ok := p.env.forms.Get(p.formID); ok {
			p.confirm = deleteFormPrompt(p.env, f)
		}
	}
	return nil
}

func (p *detailPage) View() string {
	s := p.env.styles
	var b strings.Builder

	if p.loading {
		b.WriteString(p.spinner.View() + " Loading form…\n")
		return b.String()
	}

	f, ok := p.env.forms.Get(p.formID)
	if !ok {
		b.WriteString(s.Title.Render("Form") + "\n")
		msg := p.err
		if msg == "" {
			msg = "form not found"
		}
		b.WriteString(s.Error.Render(msg) + "\n")
		return b.String()
	}

	b.WriteString(s.Title.Render(f.Title) + "\n")
	if f.Description != nil && *f.Description != "" {
		b.WriteString(*f.Description + "\n")
	}
	b.WriteString(s.Muted.Render("Created "+f.CreatedAt.Local().Format("Jan 2, 2006 15:04")) + "\n\n")

	b.WriteString(s.Subtitle.Render("Questions") + "\n")
	b.WriteString(p.panel.view(true))

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
