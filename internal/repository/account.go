package repository

import (
	"errors"

	"github.com/linskybing/form-console/internal/domain/account"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepo interface {
	Create(a *account.Account) error
	Save(a *account.Account) error
	GetByID(id string) (account.Account, error)
	GetByEmail(email string) (account.Account, error)
	GetByConfirmationToken(token string) (account.Account, error)
	IsAdmin(id string) (bool, error)
	GrantAdmin(id string) error
	CountAdmins() (int64, error)
	WithTx(tx *gorm.DB) AccountRepo
}

type DBAccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *DBAccountRepo {
	return &DBAccountRepo{
		db: db,
	}
}

func (r *DBAccountRepo) Create(a *account.Account) error {
	return r.db.Create(a).Error
}

func (r *DBAccountRepo) Save(a *account.Account) error {
	return r.db.Save(a).Error
}

func (r *DBAccountRepo) GetByID(id string) (account.Account, error) {
	var a account.Account
	err := r.db.Where("id = ?", id).First(&a).Error
	return a, err
}

func (r *DBAccountRepo) GetByEmail(email string) (account.Account, error) {
	var a account.Account
	err := r.db.Where("email = ?", email).First(&a).Error
	return a, err
}

func (r *DBAccountRepo) GetByConfirmationToken(token string) (account.Account, error) {
	var a account.Account
	err := r.db.Where("confirmation_token = ?", token).First(&a).Error
	return a, err
}

func (r *DBAccountRepo) IsAdmin(id string) (bool, error) {
	var adm account.Admin
	err := r.db.Where("id = ?", id).First(&adm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *DBAccountRepo) GrantAdmin(id string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&account.Admin{ID: id}).Error
}

func (r *DBAccountRepo) CountAdmins() (int64, error) {
	var n int64
	err := r.db.Model(&account.Admin{}).Count(&n).Error
	return n, err
}

func (r *DBAccountRepo) WithTx(tx *gorm.DB) AccountRepo {
	if tx == nil {
		return r
	}
	return &DBAccountRepo{
		db: tx,
	}
}
