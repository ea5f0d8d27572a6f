package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linskybing/form-console/internal/console"
	"github.com/linskybing/form-console/internal/logger"
	"github.com/linskybing/form-console/pkg/client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serverURL  string
	configPath string
	logFile    string
	logLevel   string
	startPath  string

	cfg *console.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "form-console",
	Short: "Terminal console for form administrators",
	Long: `form-console manages forms and their questions on a form-api server.
Sign in with an administrator account; the session token is kept in the
config file until you sign out.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if log, err = logger.NewFile(logFile, logLevel); err != nil {
			return err
		}
		if cfg, err = console.LoadConfig(configPath); err != nil {
			return err
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runConsole,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(cfg.ServerURL, cfg.Token)
		if err := c.Logout(cmd.Context()); err != nil {
			log.Warn("backend sign out failed", zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		cfg.Token = ""
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "form-api base URL (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", console.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.Flags().StringVar(&startPath, "route", console.PathRoot, "route to open first, e.g. /forms")

	rootCmd.AddCommand(logoutCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c := client.New(cfg.ServerURL, cfg.Token)

	gate := console.NewGate(c, log.Named("gate"))
	gate.Start(ctx)

	app, err := console.NewApp(ctx, c, gate, console.Options{
		InitialPath: startPath,
		Log:         log,
		SaveToken: func(token string) error {
			cfg.Token = token
			return cfg.Save(configPath)
		},
	})
	if err != nil {
		gate.Close()
		return err
	}

	log.Info("console started", zap.String("server", cfg.ServerURL))
	return app.Run(tea.WithAltScreen(), tea.WithContext(ctx))
}
