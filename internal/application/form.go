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

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{
		Repos: repos,
	}
}

// ListForms returns the forms owned by adminID, newest first.
func (s *FormService) ListForms(adminID string) ([]form.Form, error) {
	return s.Repos.Form.ListByAdmin(adminID)
}

// GetForm returns an owned form with its questions in creation order.
func (s *FormService) GetForm(adminID, id string) (form.Form, error) {
	f, err := s.Repos.Form.FindOwnedWithQuestions(id, adminID)
	if err != nil {
		return form.Form{}, mapFormErr(err)
	}
	if f.Questions == nil {
		f.Questions = []form.Question{}
	}
	return f, nil
}

// CreateForm inserts the form and then any initial questions in one
// transaction. The returned form carries the inserted questions.
func (s *FormService) CreateForm(c *gin.Context, adminID string, input form.CreateFormDTO) (form.Form, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return form.Form{}, ErrFormTitleRequired
	}

	drafts := make([]form.Question, 0, len(input.Questions))
	for _, qi := range input.Questions {
		q, err := newQuestion(qi)
		if err != nil {
			return form.Form{}, err
		}
		drafts = append(drafts, q)
	}

	f := form.Form{
		AdminID:     adminID,
		Title:       title,
		Description: input.Description,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.Create(&f); err != nil {
			return err
		}
		for i := range drafts {
			drafts[i].FormID = f.ID
		}
		return tx.Question.CreateBatch(drafts)
	})
	if err != nil {
		return form.Form{}, err
	}
	f.Questions = drafts

	utils.LogAuditWithConsole(c, "create", "form", f.ID, nil, f, "", s.Repos.Audit)

	return f, nil
}

// UpdateForm applies a partial patch of title and description.
func (s *FormService) UpdateForm(c *gin.Context, adminID, id string, input form.UpdateFormDTO) (form.Form, error) {
	var title string
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
		if title == "" {
			return form.Form{}, ErrFormTitleRequired
		}
	}

	f, err := s.Repos.Form.FindOwned(id, adminID)
	if err != nil {
		return form.Form{}, mapFormErr(err)
	}
	oldForm := f

	if input.Title != nil {
		f.Title = title
	}
	if input.Description != nil {
		f.Description = input.Description
	}

	if err := s.Repos.Form.Save(&f); err != nil {
		return form.Form{}, err
	}

	utils.LogAuditWithConsole(c, "update", "form", f.ID, oldForm, f, "", s.Repos.Audit)

	return f, nil
}

// DeleteForm removes the form's questions and then the form itself.
func (s *FormService) DeleteForm(c *gin.Context, adminID, id string) error {
	f, err := s.Repos.Form.FindOwned(id, adminID)
	if err != nil {
		return mapFormErr(err)
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Question.DeleteByForm(f.ID); err != nil {
			return err
		}
		return tx.Form.Delete(f.ID)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "form", f.ID, f, nil, "", s.Repos.Audit)

	return nil
}

func mapFormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFormNotFound
	}
	return err
}
