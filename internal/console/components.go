package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linskybing/form-console/internal/console/store"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/pkg/client"
)

// env is what every page needs. Identity is handed over explicitly by the
// App once the gate resolved.
type env struct {
	ctx       context.Context
	backend   Backend
	forms     *store.FormsStore
	questions *store.QuestionsStore
	identity  client.Identity
	styles    Styles
	width     int
	height    int
}

// page is one routed screen.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View() string
	Help() string
	// Capturing reports whether keys go to a text field or prompt, in which
	// case the App does not apply its global shortcuts.
	Capturing() bool
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// focusInputs focuses inputs[i] and blurs the others.
func focusInputs(i int, inputs ...*textinput.Model) {
	for j, in := range inputs {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// splitOptions parses a comma separated option list, dropping blanks.
func splitOptions(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// questionEditor edits a new or existing question. The options field is
// only shown for choice types.
type questionEditor struct {
	target  *form.Question
	title   textinput.Model
	options textinput.Model
	typeIdx int
	focus   int
}

const (
	editTitle = iota
	editType
	editOptions
)

func newQuestionEditor(target *form.Question) *questionEditor {
	e := &questionEditor{
		target:  target,
		title:   newInput("Question title", 500),
		options: newInput("Option A, Option B", 1000),
	}
	if target != nil {
		e.title.SetValue(target.Title)
		e.options.SetValue(strings.Join(target.Options, ", "))
		for i, t := range form.QuestionTypes {
			if t == target.Type {
				e.typeIdx = i
			}
		}
	}
	e.setFocus(editTitle)
	return e
}

func (e *questionEditor) questionType() form.QuestionType {
	return form.QuestionTypes[e.typeIdx]
}

func (e *questionEditor) fields() int {
	if e.questionType().IsChoice() {
		return 3
	}
	return 2
}

func (e *questionEditor) setFocus(i int) {
	e.focus = i
	e.title.Blur()
	e.options.Blur()
	switch i {
	case editTitle:
		e.title.Focus()
	case editOptions:
		e.options.Focus()
	}
}

func (e *questionEditor) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		e.setFocus((e.focus + 1) % e.fields())
		return nil
	case "shift+tab", "up":
		e.setFocus((e.focus + e.fields() - 1) % e.fields())
		return nil
	}

	var cmd tea.Cmd
	switch e.focus {
	case editTitle:
		e.title, cmd = e.title.Update(msg)
	case editType:
		switch msg.String() {
		case "left", "h":
			e.typeIdx = (e.typeIdx + len(form.QuestionTypes) - 1) % len(form.QuestionTypes)
		case "right", "l", " ":
			e.typeIdx = (e.typeIdx + 1) % len(form.QuestionTypes)
		}
	case editOptions:
		e.options, cmd = e.options.Update(msg)
	}
	return cmd
}

func (e *questionEditor) draft() form.CreateQuestionDTO {
	dto := form.CreateQuestionDTO{Type: e.questionType(), Title: e.title.Value()}
	if dto.Type.IsChoice() {
		dto.Options = splitOptions(e.options.Value())
	}
	return dto
}

// question returns the edited target. A non-choice type keeps the options
// the question already had; they are hidden, not deleted.
func (e *questionEditor) question() form.Question {
	q := *e.target
	q.Title = e.title.Value()
	q.Type = e.questionType()
	if q.Type.IsChoice() {
		q.Options = form.NormalizeOptions(splitOptions(e.options.Value()))
	}
	return q
}

func (e *questionEditor) view(s Styles) string {
	var b strings.Builder
	heading := "New question"
	if e.target != nil {
		heading = "Edit question"
	}
	b.WriteString(s.Subtitle.Render(heading) + "\n")

	b.WriteString(s.Label.Render(marker(e.focus == editTitle)+"Title") + e.title.View() + "\n")

	typeLabel := "‹ " + e.questionType().Label() + " ›"
	if e.focus == editType {
		typeLabel = s.Selected.Render(typeLabel)
	}
	b.WriteString(s.Label.Render(marker(e.focus == editType)+"Type") + typeLabel + "\n")

	if e.questionType().IsChoice() {
		b.WriteString(s.Label.Render(marker(e.focus == editOptions)+"Options") + e.options.View() + "\n")
	}
	b.WriteString(s.Muted.Render("tab next field · ←/→ type · enter save · esc cancel"))
	return b.String()
}

func marker(on bool) string {
	if on {
		return "› "
	}
	return "  "
}

// formEditor patches the title and description of a form.
type formEditor struct {
	target      form.Form
	title       textinput.Model
	description textinput.Model
	focus       int
}

func newFormEditor(target form.Form) *formEditor {
	e := &formEditor{
		target:      target,
		title:       newInput("Form title", 255),
		description: newInput("Description (optional)", 2000),
	}
	e.title.SetValue(target.Title)
	if target.Description != nil {
		e.description.SetValue(*target.Description)
	}
	focusInputs(0, &e.title, &e.description)
	return e
}

func (e *formEditor) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		e.focus = 1 - e.focus
		focusInputs(e.focus, &e.title, &e.description)
		return nil
	}
	var cmd tea.Cmd
	if e.focus == 0 {
		e.title, cmd = e.title.Update(msg)
	} else {
		e.description, cmd = e.description.Update(msg)
	}
	return cmd
}

func (e *formEditor) patch() form.UpdateFormDTO {
	title := e.title.Value()
	patch := form.UpdateFormDTO{Title: &title}
	desc := e.description.Value()
	if desc != "" || e.target.Description != nil {
		patch.Description = &desc
	}
	return patch
}

func (e *formEditor) view(s Styles) string {
	return s.Subtitle.Render("Edit form") + "\n" +
		s.Label.Render(marker(e.focus == 0)+"Title") + e.title.View() + "\n" +
		s.Label.Render(marker(e.focus == 1)+"Description") + e.description.View() + "\n" +
		s.Muted.Render("tab next field · enter save · esc cancel")
}

// confirmPrompt asks y/n before a delete and hands the answer to run.
type confirmPrompt struct {
	label string
	run   func(confirmed bool) tea.Cmd
}

func (p *confirmPrompt) update(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return true, p.run(true)
	case "n", "N", "esc":
		return true, p.run(false)
	}
	return false, nil
}

func (p *confirmPrompt) view(s Styles) string {
	return s.Prompt.Render(p.label + " (y/n)")
}

// questionPanel manages the questions of the selected form. The forms list
// shows it inline and the detail route shows it full size.
type questionPanel struct {
	env     *env
	cursor  int
	editor  *questionEditor
	confirm *confirmPrompt
}

func newQuestionPanel(e *env) *questionPanel {
	return &questionPanel{env: e}
}

func (p *questionPanel) capturing() bool {
	return p.editor != nil || p.confirm != nil
}

func (p *questionPanel) selected() (form.Question, bool) {
	qs := p.env.questions.Questions()
	if p.cursor < 0 || p.cursor >= len(qs) {
		return form.Question{}, false
	}
	return qs[p.cursor], true
}

// handleKey returns handled=false for keys the panel does not use.
func (p *questionPanel) handleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if p.confirm != nil {
		done, cmd := p.confirm.update(msg)
		if done {
			p.confirm = nil
		}
		return true, cmd
	}

	if p.editor != nil {
		switch msg.String() {
		case "esc":
			p.editor = nil
			p.env.questions.ClearErr()
			return true, nil
		case "enter":
			return true, p.submit()
		}
		return true, p.editor.update(msg)
	}

	qs := p.env.questions
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(qs.Questions())-1 {
			p.cursor++
		}
	case "a":
		qs.ClearErr()
		p.editor = newQuestionEditor(nil)
	case "e":
		if q, ok := p.selected(); ok {
			qs.ClearErr()
			p.editor = newQuestionEditor(&q)
		}
	case "x":
		if q, ok := p.selected(); ok {
			id := q.ID
			p.confirm = &confirmPrompt{
				label: fmt.Sprintf("Delete question %q?", q.Title),
				run: func(confirmed bool) tea.Cmd {
					return func() tea.Msg {
						return questionsMsg{err: qs.Delete(p.env.ctx, id, confirmed)}
					}
				},
			}
		}
	default:
		return false, nil
	}
	return true, nil
}

func (p *questionPanel) submit() tea.Cmd {
	qs, ctx := p.env.questions, p.env.ctx
	if p.editor.target == nil {
		dto := p.editor.draft()
		return func() tea.Msg {
			_, err := qs.Add(ctx, dto)
			return questionsMsg{err: err}
		}
	}
	q := p.editor.question()
	return func() tea.Msg {
		return questionsMsg{err: qs.Update(ctx, q)}
	}
}

// result closes the editor after a successful mutation. On failure the
// editor stays open with the store's message so the user can retry.
func (p *questionPanel) result(msg questionsMsg) {
	if msg.err == nil {
		p.editor = nil
	}
	if n := len(p.env.questions.Questions()); p.cursor >= n {
		p.cursor = max(n-1, 0)
	}
}

func (p *questionPanel) view(active bool) string {
	s := p.env.styles
	var b strings.Builder

	qs := p.env.questions.Questions()
	if len(qs) == 0 {
		b.WriteString(s.Muted.Render("No questions yet.") + "\n")
	}
	for i, q := range qs {
		line := fmt.Sprintf("%d. %s  %s", i+1, q.Title, s.Muted.Render("["+q.Type.Label()+"]"))
		if active && i == p.cursor {
			line = s.Selected.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		for _, opt := range q.VisibleOptions() {
			b.WriteString(s.Muted.Render("     ◦ "+opt) + "\n")
		}
	}

	if p.editor != nil {
		b.WriteString("\n" + p.editor.view(s) + "\n")
	}
	if p.confirm != nil {
		b.WriteString("\n" + p.confirm.view(s) + "\n")
	}
	if msg := p.env.questions.Err(); msg != "" {
		b.WriteString(s.Error.Render(msg) + "\n")
	}
	return b.String()
}

func (p *questionPanel) help() string {
	return "↑/↓ question · a add · e edit · x delete"
}
