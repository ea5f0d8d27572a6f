package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/linskybing/form-console/internal/domain/form"
)

type QuestionsBackend interface {
	ListQuestions(ctx context.Context, formID string) ([]form.Question, error)
	AddQuestion(ctx context.Context, formID string, input form.CreateQuestionDTO) (form.Question, error)
	UpdateQuestion(ctx context.Context, id string, input form.UpdateQuestionDTO) (form.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// QuestionsStore mirrors the questions of one selected form.
type QuestionsStore struct {
	backend QuestionsBackend

	mu        sync.Mutex
	formID    string
	questions []form.Question
	err       string
}

func NewQuestionsStore(backend QuestionsBackend) *QuestionsStore {
	return &QuestionsStore{backend: backend}
}

// Select scopes the store to formID and loads its questions. An empty id
// clears the selection without a backend call.
func (s *QuestionsStore) Select(ctx context.Context, formID string) error {
	s.mu.Lock()
	s.formID = formID
	s.questions = nil
	s.err = ""
	s.mu.Unlock()

	if formID == "" {
		return nil
	}
	return s.Load(ctx)
}

func (s *QuestionsStore) FormID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formID
}

func (s *QuestionsStore) Load(ctx context.Context) error {
	formID := s.FormID()
	if formID == "" {
		return s.fail(ErrNoFormSelected)
	}

	questions, err := s.backend.ListQuestions(ctx, formID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A slower response for a previous selection must not overwrite this one.
	if s.formID != formID {
		return nil
	}
	s.questions = questions
	s.err = ""
	return nil
}

func (s *QuestionsStore) Add(ctx context.Context, input form.CreateQuestionDTO) (form.Question, error) {
	if strings.TrimSpace(input.Title) == "" {
		return form.Question{}, s.fail(ErrQuestionTitleRequired)
	}
	formID := s.FormID()
	if formID == "" {
		return form.Question{}, s.fail(ErrNoFormSelected)
	}

	created, err := s.backend.AddQuestion(ctx, formID, input)
	if err != nil {
		return form.Question{}, s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.formID == formID {
		s.questions = append(s.questions, created)
	}
	s.err = ""
	return created, nil
}

// Update replaces title, type and options of q. On success the mirror entry
// becomes exactly q; options hidden by a non-choice type are kept.
func (s *QuestionsStore) Update(ctx context.Context, q form.Question) error {
	if strings.TrimSpace(q.Title) == "" {
		return s.fail(ErrQuestionTitleRequired)
	}

	_, err := s.backend.UpdateQuestion(ctx, q.ID, form.UpdateQuestionDTO{
		Type:    q.Type,
		Title:   q.Title,
		Options: q.Options,
	})
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(q.ID); i >= 0 {
		s.questions[i] = q
	}
	s.err = ""
	return nil
}

func (s *QuestionsStore) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.backend.DeleteQuestion(ctx, id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		s.questions = slices.Delete(s.questions, i, i+1)
	}
	s.err = ""
	return nil
}

func (s *QuestionsStore) Questions() []form.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.questions)
}

func (s *QuestionsStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *QuestionsStore) ClearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *QuestionsStore) fail(err error) error {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	return err
}

func (s *QuestionsStore) index(id string) int {
	return slices.IndexFunc(s.questions, func(q form.Question) bool { return q.ID == id })
}
