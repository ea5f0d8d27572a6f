package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is an email/password identity. It can sign in once confirmed.
type Account struct {
	ID                string     `json:"id" gorm:"type:uuid;primaryKey"`
	Email             string     `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash      string     `json:"-" gorm:"not null"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	ConfirmationToken *string    `json:"-" gorm:"size:64;uniqueIndex"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a Account) Confirmed() bool {
	return a.ConfirmedAt != nil
}

// Admin marks an account as an administrator of the console.
type Admin struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Admin) TableName() string {
	return "admins"
}
