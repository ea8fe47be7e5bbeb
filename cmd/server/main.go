package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"verifymail/functions/internal/config"
	"verifymail/functions/internal/httpapi"
	"verifymail/functions/internal/mailer"
)

var (
	loadConfig = config.Load
	newSMTP    = mailer.NewSMTP
	listen     = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		slog.Error("server exited", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(out, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	transport, err := newTransport(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to init mail transport: %w", err)
	}

	svc := mailer.NewVerificationMailer(transport, cfg.MailFrom, logger)
	api := httpapi.New(svc, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     api.Handler(),
		IdleTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("backend listening", slog.String("addr", addr))
		if err := listen(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newLogger(out io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

func newTransport(cfg config.Config, logger *slog.Logger) (mailer.Transport, error) {
	provider, err := mailer.ResolveProvider(cfg.MailProvider, cfg.SendGridAPIKey, cfg.SMTPHost)
	if err != nil {
		return nil, err
	}

	switch provider {
	case mailer.ProviderSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, errors.New("SENDGRID_API_KEY is required for the sendgrid provider")
		}
		return mailer.NewSendGrid(cfg.SendGridAPIKey), nil
	case mailer.ProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil, errors.New("SMTP_HOST is required for the smtp provider")
		}
		return newSMTP(mailer.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
		})
	default:
		return &mailer.LogTransport{Logger: logger}, nil
	}
}
