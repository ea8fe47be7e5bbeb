package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"verifymail/functions/internal/mailer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type VerificationSender interface {
	SendVerificationEmail(ctx context.Context, req mailer.Request) (mailer.Response, error)
}

type API struct {
	sender VerificationSender
	logger *slog.Logger
}

func New(sender VerificationSender, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		sender: sender,
		logger: logger,
	}
}

func (a *API) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.HandleFunc("/sendVerificationEmail", a.handleSendVerificationEmail)

	return router
}
