package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linskybing/form-console/internal/console/store"
	"github.com/linskybing/form-console/internal/domain/form"
)

// createPage collects a form and its draft questions locally and submits
// them in one request.
type createPage struct {
	env         *env
	title       textinput.Model
	description textinput.Model
	focus       int
	drafts      []form.CreateQuestionDTO
	editor      *questionEditor
	busy        bool
	err         string
}

func newCreatePage(e *env) *createPage {
	p := &createPage{
		env:         e,
		title:       newInput("Form title", 255),
		description: newInput("Description (optional)", 2000),
	}
	focusInputs(0, &p.title, &p.description)
	return p
}

func (p *createPage) Init() tea.Cmd {
	p.env.forms.ClearErr()
	return nil
}

func (p *createPage) Capturing() bool { return true }

func (p *createPage) Help() string {
	if p.editor != nil {
		return "enter add draft question · esc cancel"
	}
	return "tab switch field · ctrl+a add question · ctrl+d drop last question · ctrl+s create · esc back"
}

func (p *createPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case formSavedMsg:
		p.busy = false
		if msg.err != nil {
			return p, nil
		}
		return p, navigate(FormPath(msg.form.ID))
	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *createPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.editor != nil {
		switch msg.String() {
		case "esc":
			p.editor = nil
			p.err = ""
			return nil
		case "enter":
			draft := p.editor.draft()
			if strings.TrimSpace(draft.Title) == "" {
				p.err = store.ErrQuestionTitleRequired.Error()
				return nil
			}
			p.drafts = append(p.drafts, draft)
			p.editor = nil
			p.err = ""
			return nil
		}
		return p.editor.update(msg)
	}

	switch msg.String() {
	case "esc":
		return navigate(PathForms)
	case "tab", "shift+tab", "up", "down":
		p.focus = 1 - p.focus
		focusInputs(p.focus, &p.title, &p.description)
		return nil
	case "ctrl+a":
		p.err = ""
		p.editor = newQuestionEditor(nil)
		return nil
	case "ctrl+d":
		if n := len(p.drafts); n > 0 {
			p.drafts = p.drafts[:n-1]
		}
		return nil
	case "ctrl+s", "enter":
		return p.submit()
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.title, cmd = p.title.Update(msg)
	} else {
		p.description, cmd = p.description.Update(msg)
	}
	return cmd
}

func (p *createPage) submit() tea.Cmd {
	input := form.CreateFormDTO{
		Title:     p.title.Value(),
		Questions: append([]form.CreateQuestionDTO(nil), p.drafts...),
	}
	if desc := strings.TrimSpace(p.description.Value()); desc != "" {
		input.Description = &desc
	}

	p.busy = true
	p.err = ""
	ctx, forms := p.env.ctx, p.env.forms
	return func() tea.Msg {
		f, err := forms.Create(ctx, input)
		return formSavedMsg{form: f, err: err}
	}
}

func (p *createPage) View() string {
	s := p.env.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Create form") + "\n")
	b.WriteString(s.Label.Render(marker(p.editor == nil && p.focus == 0)+"Title") + p.title.View() + "\n")
	b.WriteString(s.Label.Render(marker(p.editor == nil && p.focus == 1)+"Description") + p.description.View() + "\n\n")

	b.WriteString(s.Subtitle.Render(fmt.Sprintf("Questions (%d)", len(p.drafts))) + "\n")
	if len(p.drafts) == 0 {
		b.WriteString(s.Muted.Render("No questions yet. Press ctrl+a to add one.") + "\n")
	}
	for i, d := range p.drafts {
		typ := d.Type
		if typ == "" {
			typ = form.QuestionShortAnswer
		}
		b.WriteString(fmt.Sprintf("  %d. %s  %s\n", i+1, d.Title, s.Muted.Render("["+typ.Label()+"]")))
		if typ.IsChoice() {
			for _, opt := range d.Options {
				b.WriteString(s.Muted.Render("     ◦ "+opt) + "\n")
			}
		}
	}

	if p.editor != nil {
		b.WriteString("\n" + p.editor.view(s) + "\n")
	}
	if p.busy {
		b.WriteString(s.Muted.Render("Creating…") + "\n")
	}
	if p.err != "" {
		b.WriteString(s.Error.Render(p.err) + "\n")
	} else if msg := p.env.forms.Err(); msg != "" {
		b.WriteString(s.Error.Render(msg) + "\n")
	}
	return b.String()
}
