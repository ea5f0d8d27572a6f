package repository

import (
	"time"

	"github.com/linskybing/form-console/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	ListByAdmin(adminID string) ([]form.Form, error)
	FindOwned(id, adminID string) (form.Form, error)
	FindOwnedWithQuestions(id, adminID string) (form.Form, error)
	Create(f *form.Form) error
	Save(f *form.Form) error
	Delete(id string) error
	ListCreationTimes() ([]time.Time, error)
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) ListByAdmin(adminID string) ([]form.Form, error) {
	forms := []form.Form{}
	err := r.db.Where("admin_id = ?", adminID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindOwned(id, adminID string) (form.Form, error) {
	var f form.Form
	err := r.db.Where("id = ? AND admin_id = ?", id, adminID).First(&f).Error
	return f, err
}

func (r *DBFormRepo) FindOwnedWithQuestions(id, adminID string) (form.Form, error) {
	var f form.Form
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Where("id = ? AND admin_id = ?", id, adminID).
		First(&f).Error
	return f, err
}

func (r *DBFormRepo) Create(f *form.Form) error {
	return r.db.Omit("Questions").Create(f).Error
}

func (r *DBFormRepo) Save(f *form.Form) error {
	return r.db.Omit("Questions").Save(f).Error
}

func (r *DBFormRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&form.Form{}).Error
}

func (r *DBFormRepo) ListCreationTimes() ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&form.Form{}).Order("created_at asc").Pluck("created_at", &times).Error
	return times, err
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}
