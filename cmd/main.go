package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/config"
	"fooddelivery/database"
	"fooddelivery/logger"
	"fooddelivery/middleware"
	"fooddelivery/repositories"
	"fooddelivery/routes"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/atomic"
)

const gracefulShutdownDuration = 30 * time.Second

func main() {
	if err := config.LoadEnv(config.GetEnv("ENV_FILE", ".env")); err != nil {
		log.Fatal().Err(err).Msg("failed to load environment")
	}

	app := &cli.App{
		Name:   "fooddelivery",
		Usage:  "Serve the food delivery API",
		Flags:  config.Flags,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cCtx *cli.Context) error {
	cfg, err := config.FromCLI(cCtx)
	if err != nil {
		return err
	}

	l := logger.New(logger.Options{Service: "fooddelivery", Level: cfg.LogLevel, JSON: cfg.LogJSON})
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, database.Options{
		URI:            cfg.MongoURI,
		DBName:         cfg.DBName,
		ConnectTimeout: cfg.MongoConnectTimeout,
	}, l)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Disconnect(dctx); err != nil {
			l.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	ictx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = store.EnsureIndexes(ictx)
	cancel()
	if err != nil {
		return err
	}

	sessions := services.NewSessionService(repositories.NewSessionRepository(store.DB), cfg.JWTSecret, cfg.SessionTTL, l)
	admins := services.NewAdminService(repositories.NewAdminRepository(store.DB), sessions, l)
	svc := routes.Services{
		Identity: services.NewIdentityService(repositories.NewUserRepository(store.DB), sessions, l),
		Admins:   admins,
		Sessions: sessions,
		Cart:     services.NewCartService(repositories.NewCartRepository(store.DB)),
		Orders:   services.NewOrderService(repositories.NewOrderRepository(store.DB), l),
		Feedback: services.NewFeedbackService(repositories.NewFeedbackRepository(store.DB)),
		Menu:     services.NewMenuService(repositories.NewMenuRepository(store.DB)),
	}

	if cfg.AdminUsername != "" {
		actx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := admins.EnsureAdmin(actx, cfg.AdminUsername, cfg.AdminPassword)
		cancel()
		if err != nil {
			return err
		}
	}

	ready := atomic.NewBool(false)
	router := routes.NewRouter(svc, routes.Options{
		Log: l,
		Cookie: middleware.SessionCookie{
			Name:   cfg.SessionCookieName,
			Domain: cfg.CookieDomain,
			Secure: cfg.CookieSecure,
			MaxAge: sessions.TTL(),
		},
		CORSOrigin: cfg.CORSOrigin,
		Store:      store,
		Ready:      ready,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info().Str("listenAddress", srv.Addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	ready.Store(true)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("Shutting down")
	ready.Store(false)

	sctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownDuration)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		l.Error().Err(err).Msg("Graceful HTTP server shutdown failed")
		return err
	}
	l.Info().Msg("HTTP server gracefully stopped")
	return nil
}
