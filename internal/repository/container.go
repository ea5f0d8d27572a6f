package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Account  AccountRepo
	Form     FormRepo
	Question QuestionRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Account:  NewAccountRepo(db),
		Form:     NewFormRepo(db),
		Question: NewQuestionRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Account:  r.Account.WithTx(tx),
		Form:     r.Form.WithTx(tx),
		Question: r.Question.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn inside a database transaction. Repos assembled without a
// database (service tests with mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
