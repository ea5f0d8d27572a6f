package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/session"
	"go.uber.org/zap"
)

type Handlers struct {
	Audit     *AuditHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Form      *FormHandler
	Question  *QuestionHandler
	Session   *SessionHandler
	Router    *gin.Engine
}

func New(svc *application.Services, hub *session.Hub, log *zap.Logger, router *gin.Engine) *Handlers {
	h := &Handlers{
		Audit:     NewAuditHandler(svc.Audit),
		Auth:      NewAuthHandler(svc.Auth),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Form:      NewFormHandler(svc.Form),
		Question:  NewQuestionHandler(svc.Question),
		Session:   NewSessionHandler(hub, svc.Auth, log),
		Router:    router,
	}
	return h
}
