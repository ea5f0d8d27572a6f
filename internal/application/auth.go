package application

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/form-console/internal/api/middleware"
	"github.com/linskybing/form-console/internal/domain/account"
	"github.com/linskybing/form-console/internal/mail"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/session"
	"github.com/linskybing/form-console/pkg/types"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repos     *repository.Repos
	publisher session.Publisher
	revoker   session.Revoker
	mailer    mail.Sender
	log       *zap.Logger

	TokenTTL  time.Duration
	PublicURL string
	now       func() time.Time
}

func NewAuthService(repos *repository.Repos, publisher session.Publisher, revoker session.Revoker, mailer mail.Sender, log *zap.Logger) *AuthService {
	return &AuthService{
		Repos:     repos,
		publisher: publisher,
		revoker:   revoker,
		mailer:    mailer,
		log:       log,
		TokenTTL:  24 * time.Hour,
		now:       time.Now,
	}
}

type LoginResult struct {
	Account account.Account
	Token   string
	IsAdmin bool
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unconfirmed account and mails its confirmation link.
// A delivery failure is logged; the account still exists and the caller
// can ask an operator to confirm it.
func (s *AuthService) Register(ctx context.Context, input account.CredentialsInput) (account.Account, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return account.Account{}, ErrMissingCredentials
	}

	_, err := s.Repos.Account.GetByEmail(email)
	if err == nil {
		return account.Account{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account.Account{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, err
	}
	token := uuid.NewString()
	acc := account.Account{
		Email:             email,
		PasswordHash:      string(hashed),
		ConfirmationToken: &token,
	}

	if err := s.Repos.Account.Create(&acc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.Account{}, ErrEmailTaken
		}
		return account.Account{}, err
	}

	if err := s.mailer.SendConfirmation(ctx, email, s.confirmationLink(token)); err != nil {
		s.log.Warn("confirmation mail failed", zap.String("account_id", acc.ID), zap.Error(err))
	}

	return acc, nil
}

func (s *AuthService) confirmationLink(token string) string {
	return strings.TrimRight(s.PublicURL, "/") + "/auth/confirm?token=" + url.QueryEscape(token)
}

// Confirm marks the account holding token as confirmed. Tokens are single use.
func (s *AuthService) Confirm(_ context.Context, token string) (account.Account, error) {
	if token == "" {
		return account.Account{}, ErrInvalidConfirmationToken
	}

	acc, err := s.Repos.Account.GetByConfirmationToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account.Account{}, ErrInvalidConfirmationToken
	}
	if err != nil {
		return account.Account{}, err
	}

	now := s.now()
	acc.ConfirmedAt = &now
	acc.ConfirmationToken = nil
	if err := s.Repos.Account.Save(&acc); err != nil {
		return account.Account{}, err
	}
	return acc, nil
}

func (s *AuthService) Login(ctx context.Context, input account.CredentialsInput) (LoginResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return LoginResult{}, ErrMissingCredentials
	}

	acc, err := s.Repos.Account.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !acc.Confirmed() {
		return LoginResult{}, ErrEmailNotConfirmed
	}

	token, isAdmin, err := middleware.GenerateToken(acc.ID, acc.Email, s.TokenTTL, s.Repos.Account)
	if err != nil {
		return LoginResult{}, err
	}

	s.publish(ctx, session.Event{Type: session.EventSignedIn, AccountID: acc.ID, Email: acc.Email, IsAdmin: isAdmin})

	return LoginResult{Account: acc, Token: token, IsAdmin: isAdmin}, nil
}

// Logout revokes the token described by claims. Nil claims is a no-op.
func (s *AuthService) Logout(ctx context.Context, claims *types.Claims) error {
	if claims == nil {
		return nil
	}

	if claims.ID != "" && claims.ExpiresAt != nil {
		if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			return err
		}
	}

	s.publish(ctx, session.Event{Type: session.EventSignedOut, AccountID: claims.AccountID, Email: claims.Email})
	return nil
}

// IsAdmin reports live admins-table membership.
func (s *AuthService) IsAdmin(accountID string) (bool, error) {
	return s.Repos.Account.IsAdmin(accountID)
}

// GrantAdmin adds the account registered under email to the admins table.
func (s *AuthService) GrantAdmin(email string) (account.Account, error) {
	acc, err := s.Repos.Account.GetByEmail(normalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return account.Account{}, err
	}
	if err := s.Repos.Account.GrantAdmin(acc.ID); err != nil {
		return account.Account{}, err
	}
	return acc, nil
}

func (s *AuthService) publish(ctx context.Context, e session.Event) {
	e.At = s.now()
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.Warn("session event not published",
			zap.String("type", string(e.Type)),
			zap.String("account_id", e.AccountID),
			zap.Error(err),
		)
	}
}
