package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sessiondesk/internal/config"
	"sessiondesk/internal/httpapi"
	"sessiondesk/internal/modules/auth"
	"sessiondesk/internal/modules/booking"
	"sessiondesk/internal/modules/catalog"
	"sessiondesk/internal/modules/opencall"
	"sessiondesk/internal/modules/social"
	jwtsvc "sessiondesk/internal/pkg/jwt"
	"sessiondesk/internal/pkg/logger"
	"sessiondesk/internal/repository"
	"sessiondesk/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := store.Open()
	store.Seed(db)

	userRepo := repository.NewUserRepository(db)
	studioRepo := repository.NewStudioRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewBookingRequestRepository(db)
	openCallRepo := repository.NewOpenCallRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cfg:       cfg,
		Auth:      auth.NewService(userRepo, studioRepo, j),
		Catalog:   catalog.NewService(studioRepo),
		Bookings:  booking.NewService(bookingRepo, requestRepo, studioRepo),
		Social:    social.NewService(userRepo, studioRepo),
		OpenCalls: opencall.NewService(openCallRepo, studioRepo, userRepo),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down mockapi server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting mockapi server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
