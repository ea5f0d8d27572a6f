package repository

import (
	"github.com/linskybing/form-console/internal/domain/form"
	"gorm.io/gorm"
)

type QuestionRepo interface {
	ListByForm(formID string) ([]form.Question, error)
	FindByID(id string) (form.Question, error)
	Create(q *form.Question) error
	CreateBatch(qs []form.Question) error
	Save(q *form.Question) error
	Delete(id string) error
	DeleteByForm(formID string) error
	WithTx(tx *gorm.DB) QuestionRepo
}

type DBQuestionRepo struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) *DBQuestionRepo {
	return &DBQuestionRepo{
		db: db,
	}
}

func (r *DBQuestionRepo) ListByForm(formID string) ([]form.Question, error) {
	questions := []form.Question{}
	err := r.db.Where("form_id = ?", formID).Order("created_at asc").Find(&questions).Error
	return questions, err
}

func (r *DBQuestionRepo) FindByID(id string) (form.Question, error) {
	var q form.Question
	err := r.db.Where("id = ?", id).First(&q).Error
	return q, err
}

func (r *DBQuestionRepo) Create(q *form.Question) error {
	return r.db.Create(q).Error
}

func (r *DBQuestionRepo) CreateBatch(qs []form.Question) error {
	if len(qs) == 0 {
		return nil
	}
	return r.db.Create(&qs).Error
}

// Save writes every column, so a nil option list clears the stored one.
func (r *DBQuestionRepo) Save(q *form.Question) error {
	return r.db.Save(q).Error
}

func (r *DBQuestionRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&form.Question{}).Error
}

func (r *DBQuestionRepo) DeleteByForm(formID string) error {
	return r.db.Where("form_id = ?", formID).Delete(&form.Question{}).Error
}

func (r *DBQuestionRepo) WithTx(tx *gorm.DB) QuestionRepo {
	if tx == nil {
		return r
	}
	return &DBQuestionRepo{
		db: tx,
	}
}
