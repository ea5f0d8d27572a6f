// Package store keeps the console's local mirror of forms and questions.
// The backend stays the source of truth: the mirror only changes after a
// backend call succeeds, and a failed call leaves it as it was.
package store

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/linskybing/form-console/internal/domain/form"
)

var (
	ErrFormTitleRequired     = errors.New("form title is required")
	ErrQuestionTitleRequired = errors.New("question title is required")
	ErrNotConfirmed          = errors.New("delete was not confirmed")
	ErrNoFormSelected        = errors.New("no form selected")
)

type FormsBackend interface {
	ListForms(ctx context.Context) ([]form.Form, error)
	GetForm(ctx context.Context, id string) (form.Form, error)
	CreateForm(ctx context.Context, input form.CreateFormDTO) (form.Form, error)
	UpdateForm(ctx context.Context, id string, input form.UpdateFormDTO) (form.Form, error)
	DeleteForm(ctx context.Context, id string) error
}

type FormsStore struct {
	backend FormsBackend

	mu     sync.Mutex
	forms  []form.Form
	loaded bool
	err    string
}

func NewFormsStore(backend FormsBackend) *FormsStore {
	return &FormsStore{backend: backend}
}

// Load replaces the mirror with the caller's forms, newest first.
func (s *FormsStore) Load(ctx context.Context) error {
	forms, err := s.backend.ListForms(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = forms
	s.loaded = true
	s.err = ""
	return nil
}

// Fetch reads one form from the backend and merges it into the mirror,
// replacing an existing entry or appending a new one. A failure is returned
// to the caller without touching the mirror or the displayed error.
func (s *FormsStore) Fetch(ctx context.Context, id string) (form.Form, error) {
	f, err := s.backend.GetForm(ctx, id)
	if err != nil {
		return form.Form{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(f.ID); i >= 0 {
		s.forms[i] = f
	} else {
		s.forms = append(s.forms, f)
	}
	return f, nil
}

func (s *FormsStore) Create(ctx context.Context, input form.CreateFormDTO) (form.Form, error) {
	if strings.TrimSpace(input.Title) == "" {
		return form.Form{}, s.fail(ErrFormTitleRequired)
	}
	for _, q := range input.Questions {
		if strings.TrimSpace(q.Title) == "" {
			return form.Form{}, s.fail(ErrQuestionTitleRequired)
		}
	}

	created, err := s.backend.CreateForm(ctx, input)
	if err != nil {
		return form.Form{}, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = append(s.forms, created)
	s.err = ""
	return created, nil
}

// Update applies a partial patch and swaps the returned record in place.
func (s *FormsStore) Update(ctx context.Context, id string, input form.UpdateFormDTO) (form.Form, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return form.Form{}, s.fail(ErrFormTitleRequired)
	}

	updated, err := s.backend.UpdateForm(ctx, id, input)
	if err != nil {
		return form.Form{}, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		if updated.Questions == nil {
			updated.Questions = s.forms[i].Questions
		}
		s.forms[i] = updated
	}
	s.err = ""
	return updated, nil
}

// Delete removes a form after the user confirmed it. The backend deletes the
// form's questions before the form itself.
func (s *FormsStore) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.backend.DeleteForm(ctx, id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		s.forms = slices.Delete(s.forms, i, i+1)
	}
	s.err = ""
	return nil
}

// Forms returns a copy of the mirror.
func (s *FormsStore) Forms() []form.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.forms)
}

func (s *FormsStore) Get(id string) (form.Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.forms[i], true
	}
	return form.Form{}, false
}

func (s *FormsStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Err returns the message of the last failed operation, or "".
func (s *FormsStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *FormsStore) ClearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *FormsStore) fail(err error) error {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	return err
}

func (s *FormsStore) index(id string) int {
	return slices.IndexFunc(s.forms, func(f form.Form) bool { return f.ID == id })
}
