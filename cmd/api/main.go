package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/api/handlers"
	"github.com/linskybing/form-console/internal/api/middleware"
	"github.com/linskybing/form-console/internal/api/routes"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/config"
	"github.com/linskybing/form-console/internal/config/db"
	"github.com/linskybing/form-console/internal/cron"
	"github.com/linskybing/form-console/internal/logger"
	"github.com/linskybing/form-console/internal/mail"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/session"
	"github.com/linskybing/form-console/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var log *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "form-api",
	Short: "Backend for the Form Console",
	Long: `form-api serves authentication, session notifications and the forms and
questions tables used by the Form Console administrators.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		foundEnv := config.LoadConfig()

		var err error
		log, err = logger.New(config.LogLevel, config.IsProduction)
		if err != nil {
			return err
		}
		if !foundEnv {
			log.Debug("no .env file found, using environment only")
		}
		utils.AuditLogger = log.Named("audit")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Init(log); err != nil {
			return err
		}
		if err := db.Migrate(db.DB); err != nil {
			return err
		}
		log.Info("database schema is up to date")
		return nil
	},
}

var grantEmail string

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin",
	Short: "Register an account as an administrator",
	Example: `  form-api grant-admin --email admin@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Init(log); err != nil {
			return err
		}
		repos := repository.NewRepositories(db.DB)
		svc := application.NewAuthService(repos, session.NewHub(), session.NewMemoryRevoker(), mail.NewLogSender(log), log)

		acc, err := svc.GrantAdmin(grantEmail)
		if err != nil {
			return fmt.Errorf("grant admin to %s: %w", grantEmail, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now an administrator\n", acc.Email, acc.ID)
		return nil
	},
}

func init() {
	grantAdminCmd.Flags().StringVar(&grantEmail, "email", "", "email of the account to promote")
	_ = grantAdminCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(serveCmd, migrateCmd, grantAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	config.LogSummary(log)

	if err := db.Init(log); err != nil {
		return err
	}
	if err := db.Migrate(db.DB); err != nil {
		return err
	}
	repos := repository.NewRepositories(db.DB)

	g, ctx := errgroup.WithContext(ctx)

	hub := session.NewHub()
	defer hub.Close()

	var (
		publisher session.Publisher = hub
		revoker   session.Revoker
		tasks     []cron.Task
	)
	if config.RedisAddr != "" {
		client, err := session.NewRedisClient(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		broker := session.NewRedisBroker(client, hub, log.Named("session"))
		publisher = broker
		revoker = session.NewRedisRevoker(client)
		g.Go(func() error { return broker.Run(ctx) })
	} else {
		memRevoker := session.NewMemoryRevoker()
		revoker = memRevoker
		tasks = append(tasks, cron.RevokerSweep(memRevoker, 10*time.Minute))
	}

	var mailer mail.Sender = mail.NewLogSender(log.Named("mail"))
	if config.ResendAPIKey != "" {
		mailer = mail.NewResendSender(config.ResendAPIKey, config.MailFrom, log.Named("mail"))
	}

	middleware.Init(revoker)
	services := application.New(repos, publisher, revoker, mailer, log)
	loginLimiter := middleware.NewRateLimiter(config.LoginRate, config.LoginBurst)

	tasks = append(tasks,
		cron.AuditCleanup(services.Audit, config.AuditRetentionDays, log.Named("cron")),
		cron.LimiterSweep(loginLimiter),
	)
	g.Go(func() error { return cron.Run(ctx, log.Named("cron"), tasks...) })

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware(log.Named("http")))

	h := handlers.New(services, hub, log, router)
	routes.RegisterRoutes(router, h, repos, loginLimiter)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		log.Info("starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		// Ends open session streams so Shutdown does not wait on them.
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
