package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/form-console/internal/api/middleware"
	"github.com/linskybing/form-console/internal/domain/account"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/repository/mock"
	"github.com/linskybing/form-console/internal/session"
	"github.com/linskybing/form-console/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sentMail struct {
	to   string
	link string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendConfirmation(_ context.Context, to, link string) error {
	m.sent = append(m.sent, sentMail{to, link})
	return m.err
}

type authFixture struct {
	svc      *AuthService
	accounts *mock.MockAccountRepo
	hub      *session.Hub
	revoker  *session.MemoryRevoker
	mailer   *fakeMailer
}

// --------------------- Setup ---------------------
func setupAuthService(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	f := authFixture{
		accounts: mock.NewMockAccountRepo(ctrl),
		hub:      session.NewHub(),
		revoker:  session.NewMemoryRevoker(),
		mailer:   &fakeMailer{},
	}
	t.Cleanup(f.hub.Close)

	repos := &repository.Repos{Account: f.accounts}
	f.svc = NewAuthService(repos, f.hub, f.revoker, f.mailer, zap.NewNop())
	f.svc.PublicURL = "http://forms.test/"
	return f
}

func confirmedAccount(t *testing.T, password string) account.Account {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return account.Account{ID: "acc-1", Email: "alice@test.com", PasswordHash: string(hashed), ConfirmedAt: &now}
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	f := setupAuthService(t)

	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(account.Account{}, gorm.ErrRecordNotFound)
	f.accounts.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *account.Account) error {
		a.ID = "acc-1"
		return nil
	})

	acc, err := f.svc.Register(context.Background(), account.CredentialsInput{Email: " Alice@Test.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", acc.Email)
	assert.False(t, acc.Confirmed())
	require.NotNil(t, acc.ConfirmationToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("secret1")))

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "alice@test.com", f.mailer.sent[0].to)
	assert.Equal(t, "http://forms.test/auth/confirm?token="+*acc.ConfirmationToken, f.mailer.sent[0].link)
}

func TestRegister_EmailTaken(t *testing.T) {
	f := setupAuthService(t)
	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(account.Account{ID: "acc-1"}, nil)

	_, err := f.svc.Register(context.Background(), account.CredentialsInput{Email: "alice@test.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Empty(t, f.mailer.sent)
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	f := setupAuthService(t)
	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(account.Account{}, gorm.ErrRecordNotFound)
	f.accounts.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := f.svc.Register(context.Background(), account.CredentialsInput{Email: "alice@test.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_MailFailureStillCreatesAccount(t *testing.T) {
	f := setupAuthService(t)
	f.mailer.err = errors.New("smtp down")
	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(account.Account{}, gorm.ErrRecordNotFound)
	f.accounts.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := f.svc.Register(context.Background(), account.CredentialsInput{Email: "alice@test.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestRegister_MissingCredentials(t *testing.T) {
	f := setupAuthService(t)

	_, err := f.svc.Register(context.Background(), account.CredentialsInput{Email: " ", Password: "x"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

// --------------------- Confirm ---------------------
func TestConfirm(t *testing.T) {
	f := setupAuthService(t)
	token := "tok"
	f.accounts.EXPECT().GetByConfirmationToken("tok").Return(account.Account{ID: "acc-1", ConfirmationToken: &token}, nil)
	f.accounts.EXPECT().Save(gomock.Any()).DoAndReturn(func(a *account.Account) error {
		assert.True(t, a.Confirmed())
		assert.Nil(t, a.ConfirmationToken)
		return nil
	})

	acc, err := f.svc.Confirm(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, acc.Confirmed())
}

func TestConfirm_UnknownToken(t *testing.T) {
	f := setupAuthService(t)
	f.accounts.EXPECT().GetByConfirmationToken("nope").Return(account.Account{}, gorm.ErrRecordNotFound)

	_, err := f.svc.Confirm(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidConfirmationToken)

	_, err = f.svc.Confirm(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidConfirmationToken)
}

// --------------------- Login ---------------------
func TestLogin_SuccessPublishesSignedIn(t *testing.T) {
	f := setupAuthService(t)
	acc := confirmedAccount(t, "secret1")
	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(acc, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(accountID, email string, exp time.Duration, repo repository.AccountRepo) (string, bool, error) {
		assert.Equal(t, "acc-1", accountID)
		return "token123", true, nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	events, cancel := f.hub.Subscribe("acc-1")
	defer cancel()

	res, err := f.svc.Login(context.Background(), account.CredentialsInput{Email: "alice@test.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token123", res.Token)
	assert.True(t, res.IsAdmin)
	assert.Equal(t, "acc-1", res.Account.ID)

	select {
	case e := <-events:
		assert.Equal(t, session.EventSignedIn, e.Type)
		assert.True(t, e.IsAdmin)
	case <-time.After(time.Second):
		t.Fatal("signed_in event not published")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := setupAuthService(t)
	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(confirmedAccount(t, "secret1"), nil)

	_, err := f.svc.Login(context.Background(), account.CredentialsInput{Email: "alice@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := setupAuthService(t)
	f.accounts.EXPECT().GetByEmail("bob@test.com").Return(account.Account{}, gorm.ErrRecordNotFound)

	_, err := f.svc.Login(context.Background(), account.CredentialsInput{Email: "bob@test.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Unconfirmed(t *testing.T) {
	f := setupAuthService(t)
	acc := confirmedAccount(t, "secret1")
	acc.ConfirmedAt = nil
	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(acc, nil)

	_, err := f.svc.Login(context.Background(), account.CredentialsInput{Email: "alice@test.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailNotConfirmed)
}

// --------------------- Logout ---------------------
func TestLogout_RevokesAndPublishes(t *testing.T) {
	f := setupAuthService(t)
	events, cancel := f.hub.Subscribe("acc-1")
	defer cancel()

	claims := &types.Claims{
		AccountID: "acc-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	require.NoError(t, f.svc.Logout(context.Background(), claims))

	revoked, err := f.revoker.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	select {
	case e := <-events:
		assert.Equal(t, session.EventSignedOut, e.Type)
	case <-time.After(time.Second):
		t.Fatal("signed_out event not published")
	}
}

func TestLogout_NilClaims(t *testing.T) {
	f := setupAuthService(t)
	assert.NoError(t, f.svc.Logout(context.Background(), nil))
}

// --------------------- GrantAdmin ---------------------
func TestGrantAdmin(t *testing.T) {
	f := setupAuthService(t)
	f.accounts.EXPECT().GetByEmail("alice@test.com").Return(account.Account{ID: "acc-1", Email: "alice@test.com"}, nil)
	f.accounts.EXPECT().GrantAdmin("acc-1").Return(nil)

	acc, err := f.svc.GrantAdmin("ALICE@test.com")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", acc.ID)
}

func TestGrantAdmin_UnknownEmail(t *testing.T) {
	f := setupAuthService(t)
	f.accounts.EXPECT().GetByEmail("nobody@test.com").Return(account.Account{}, gorm.ErrRecordNotFound)

	_, err := f.svc.GrantAdmin("nobody@test.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
