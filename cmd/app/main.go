package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/perf-studios/waitlist-backend/internal/api/http"
	"github.com/perf-studios/waitlist-backend/internal/cache"
	"github.com/perf-studios/waitlist-backend/internal/config"
	"github.com/perf-studios/waitlist-backend/internal/db"
	"github.com/perf-studios/waitlist-backend/internal/queue"
	"github.com/perf-studios/waitlist-backend/internal/queue/asynqserver"
	queueClient "github.com/perf-studios/waitlist-backend/internal/queue/client"
	"github.com/perf-studios/waitlist-backend/internal/repository"
	"github.com/perf-studios/waitlist-backend/internal/server"
	"github.com/perf-studios/waitlist-backend/internal/service"
	"github.com/perf-studios/waitlist-backend/internal/worker"
	"github.com/perf-studios/waitlist-backend/pkg/email/smtp"
	logger "github.com/perf-studios/waitlist-backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Info("starting waitlist api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	// Redis backs both the asynq queue and the signup-count cache
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		return
	}
	defer redisClient.Close()

	// Notification queue
	workers := worker.NewWorkers(worker.Deps{
		EmailSender: emailSender,
		Config:      cfg,
	})

	asynqSrv, asynqMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := asynqSrv.Run(asynqMux); err != nil {
			appLogger.Error("error occurred while running asynq server", zap.Error(err))
		}
	}()

	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer asynqClient.Close()
	queueClient.SetClient(asynqClient)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:     cfg,
		Repos:      repos,
		Notifier:   queue.NewLeadNotifier(),
		CountCache: cache.NewSignupCount(redisClient),
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	asynqSrv.Shutdown()

	appLogger.Info("app stopped")
}
