package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/handlers"
	"dconn.dev/portfolio/internal/mail"
	"dconn.dev/portfolio/internal/server"
	"dconn.dev/portfolio/internal/services"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SERVER_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	projects, err := services.NewProjectService(cfg.Projects)
	if err != nil {
		return fmt.Errorf("load project catalog: %w", err)
	}
	if n := projects.FeaturedCount(); n > 1 {
		logger.Warn("more than one featured project; the first one is used on the projects page", zap.Int("featured", n))
	}

	sender, err := newSender(cfg)
	if err != nil {
		return err
	}
	contact := services.NewContactService(sender, services.ContactConfig{
		Recipient: cfg.Contact.Recipient,
		From:      cfg.Contact.From,
	})

	router := handlers.SetupRoutes(handlers.Dependencies{
		Projects:    projects,
		Contact:     contact,
		Logger:      logger,
		StaticDir:   cfg.StaticDir,
		ResumeBotID: cfg.ResumeBotID,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.ServerAddr, router, logger, cfg.ShutdownTimeout).ListenAndServe(ctx)
}

func newSender(cfg *config.Config) (mail.Sender, error) {
	if cfg.SMTP.Host == "" {
		logger.Warn("PORTFOLIO_SMTP_HOST is not set; contact form submissions will fail")
		return mail.DisabledSender{}, nil
	}
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		Timeout:  cfg.SMTP.Timeout,
	})
}
