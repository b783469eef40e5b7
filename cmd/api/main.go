package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/jobsethiopia/jobsethiopia-go/internal/config"
	"github.com/jobsethiopia/jobsethiopia-go/internal/handler"
	"github.com/jobsethiopia/jobsethiopia-go/internal/mail"
	"github.com/jobsethiopia/jobsethiopia-go/internal/middleware"
	"github.com/jobsethiopia/jobsethiopia-go/internal/repository"
	"github.com/jobsethiopia/jobsethiopia-go/internal/service"
	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	store := session.NewStore(codec, cfg.IsProduction())

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authService, store)

	jobRepo := repository.NewJobRepository(db)
	jobService := service.NewJobService(jobRepo)
	jobHandler := handler.NewJobHandler(jobService)

	tipRepo := repository.NewTipRepository(db)
	tipService := service.NewTipService(tipRepo)
	tipHandler := handler.NewTipHandler(tipService)

	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPass)
	contactService := service.NewContactService(mailer, cfg.ContactTo)
	contactHandler := handler.NewContactHandler(contactService)

	if cfg.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("admin provisioning failed", "error", err)
			cancel()
			os.Exit(1)
		}
		cancel()
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Gate(store))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/jobs", jobHandler.HandleList)
	r.Get("/api/jobs/{id}", jobHandler.HandleGet)
	r.Get("/api/tips", tipHandler.HandleList)
	r.Get("/api/tips/{id}", tipHandler.HandleGet)

	r.Post("/api/auth/logout", authHandler.HandleLogout)
	r.Get("/api/auth/session", authHandler.HandleSession)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/login", authHandler.HandleLogin)
		r.Post("/api/contact", contactHandler.HandleSend)
	})

	// The Gate middleware rejects unauthenticated /api/admin requests
	// before these handlers run.
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/jobs", jobHandler.HandleCreate)
		r.Put("/jobs/{id}", jobHandler.HandleUpdate)
		r.Delete("/jobs/{id}", jobHandler.HandleDelete)

		r.Post("/tips", tipHandler.HandleCreate)
		r.Put("/tips/{id}", tipHandler.HandleUpdate)
		r.Delete("/tips/{id}", tipHandler.HandleDelete)

		r.Post("/change-password", authHandler.HandleChangePassword)
	})

	r.Get("/login", handler.LoginPage)
	r.Get("/admin", handler.AdminPage)
	r.Get("/admin/*", handler.AdminPage)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
