package application

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/pkg/utils"
	"gorm.io/gorm"
)

type QuestionService struct {
	Repos *repository.Repos
}

func NewQuestionService(repos *repository.Repos) *QuestionService {
	return &QuestionService{
		Repos: repos,
	}
}

// newQuestion validates a create input. An empty type means short answer.
func newQuestion(input form.CreateQuestionDTO) (form.Question, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return form.Question{}, ErrQuestionTitleRequired
	}
	qType := input.Type
	if qType == "" {
		qType = form.QuestionShortAnswer
	}
	if !qType.Valid() {
		return form.Question{}, ErrInvalidQuestionType
	}
	return form.Question{
		Type:    qType,
		Title:   title,
		Options: form.NormalizeOptions(input.Options),
	}, nil
}

// ListQuestions returns the questions of an owned form in creation order.
func (s *QuestionService) ListQuestions(adminID, formID string) ([]form.Question, error) {
	if _, err := s.Repos.Form.FindOwned(formID, adminID); err != nil {
		return nil, mapFormErr(err)
	}
	return s.Repos.Question.ListByForm(formID)
}

func (s *QuestionService) AddQuestion(c *gin.Context, adminID, formID string, input form.CreateQuestionDTO) (form.Question, error) {
	q, err := newQuestion(input)
	if err != nil {
		return form.Question{}, err
	}

	if _, err := s.Repos.Form.FindOwned(formID, adminID); err != nil {
		return form.Question{}, mapFormErr(err)
	}
	q.FormID = formID

	if err := s.Repos.Question.Create(&q); err != nil {
		return form.Question{}, err
	}

	utils.LogAuditWithConsole(c, "create", "question", q.ID, nil, q, "", s.Repos.Audit)

	return q, nil
}

// UpdateQuestion replaces title, type and options. Options submitted for a
// non-choice type are kept as given.
func (s *QuestionService) UpdateQuestion(c *gin.Context, adminID, id string, input form.UpdateQuestionDTO) (form.Question, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return form.Question{}, ErrQuestionTitleRequired
	}
	if !input.Type.Valid() {
		return form.Question{}, ErrInvalidQuestionType
	}

	q, err := s.findOwnedQuestion(adminID, id)
	if err != nil {
		return form.Question{}, err
	}
	oldQuestion := q

	q.Title = title
	q.Type = input.Type
	q.Options = form.NormalizeOptions(input.Options)

	if err := s.Repos.Question.Save(&q); err != nil {
		return form.Question{}, err
	}

	utils.LogAuditWithConsole(c, "update", "question", q.ID, oldQuestion, q, "", s.Repos.Audit)

	return q, nil
}

func (s *QuestionService) DeleteQuestion(c *gin.Context, adminID, id string) error {
	q, err := s.findOwnedQuestion(adminID, id)
	if err != nil {
		return err
	}

	if err := s.Repos.Question.Delete(q.ID); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "question", q.ID, q, nil, "", s.Repos.Audit)

	return nil
}

// findOwnedQuestion hides questions of other admins' forms behind not found.
func (s *QuestionService) findOwnedQuestion(adminID, id string) (form.Question, error) {
	q, err := s.Repos.Question.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return form.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return form.Question{}, err
	}

	if _, err := s.Repos.Form.FindOwned(q.FormID, adminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return form.Question{}, ErrQuestionNotFound
		}
		return form.Question{}, err
	}
	return q, nil
}
