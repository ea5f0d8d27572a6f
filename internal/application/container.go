package application

import (
	"github.com/linskybing/form-console/internal/config"
	"github.com/linskybing/form-console/internal/mail"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/session"
	"go.uber.org/zap"
)

type Services struct {
	Audit     *AuditService
	Auth      *AuthService
	Dashboard *DashboardService
	Form      *FormService
	Question  *QuestionService
}

func New(repos *repository.Repos, publisher session.Publisher, revoker session.Revoker, mailer mail.Sender, log *zap.Logger) *Services {
	auth := NewAuthService(repos, publisher, revoker, mailer, log)
	if config.TokenTTL > 0 {
		auth.TokenTTL = config.TokenTTL
	}
	auth.PublicURL = config.PublicURL

	return &Services{
		Audit:     NewAuditService(repos),
		Auth:      auth,
		Dashboard: NewDashboardService(repos),
		Form:      NewFormService(repos),
		Question:  NewQuestionService(repos),
	}
}
