// Package testutils assembles the API for tests that need real wiring.
package testutils

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/api/handlers"
	"github.com/linskybing/form-console/internal/api/middleware"
	"github.com/linskybing/form-console/internal/api/routes"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CaptureMailer records confirmation links instead of sending them.
type CaptureMailer struct {
	mu    sync.Mutex
	links map[string]string
}

func NewCaptureMailer() *CaptureMailer {
	return &CaptureMailer{links: map[string]string{}}
}

func (m *CaptureMailer) SendConfirmation(_ context.Context, to, link string) error {
	m.mu.Lock()
	m.links[to] = link
	m.mu.Unlock()
	return nil
}

// Link returns the last confirmation link sent to addr.
func (m *CaptureMailer) Link(addr string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.links[addr]
}

type Server struct {
	Router   *gin.Engine
	Repos    *repository.Repos
	Services *application.Services
	Hub      *session.Hub
	Revoker  *session.MemoryRevoker
	Mailer   *CaptureMailer
}

// NewServer wires the whole API over gdb with in-process sessions. The
// caller must have loaded the configuration.
func NewServer(gdb *gorm.DB) *Server {
	gin.SetMode(gin.TestMode)

	repos := repository.NewRepositories(gdb)
	hub := session.NewHub()
	rev := session.NewMemoryRevoker()
	mailer := NewCaptureMailer()

	middleware.Init(rev)
	svc := application.New(repos, hub, rev, mailer, zap.NewNop())

	r := gin.New()
	h := handlers.New(svc, hub, zap.NewNop(), r)
	routes.RegisterRoutes(r, h, repos, middleware.NewRateLimiter(1000, 1000))

	return &Server{
		Router:   r,
		Repos:    repos,
		Services: svc,
		Hub:      hub,
		Revoker:  rev,
		Mailer:   mailer,
	}
}
