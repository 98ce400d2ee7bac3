package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/lash-app/backend/internal/api/http"
	"github.com/lash-app/backend/internal/cache"
	"github.com/lash-app/backend/internal/config"
	"github.com/lash-app/backend/internal/db"
	"github.com/lash-app/backend/internal/queue/asynqserver"
	queueClient "github.com/lash-app/backend/internal/queue/client"
	"github.com/lash-app/backend/internal/repository"
	"github.com/lash-app/backend/internal/server"
	"github.com/lash-app/backend/internal/service"
	"github.com/lash-app/backend/internal/worker"
	"github.com/lash-app/backend/pkg/auth"
	"github.com/lash-app/backend/pkg/email/smtp"
	"github.com/lash-app/backend/pkg/hash"
	"github.com/lash-app/backend/pkg/logger"
	"github.com/lash-app/backend/pkg/otp"
	"github.com/lash-app/backend/pkg/pdf"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting backend api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	// Init redis
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Fatal("redis connect problem", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	hasher := hash.NewBcryptHasher(cfg.Auth.PasswordCost)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Fatal("smtp sender creation failed", zap.Error(err))
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Fatal("auth manager creation failed", zap.Error(err))
	}

	otpGenerator := otp.NewGOTPGenerator()

	// Queue
	asynqClient := queueClient.New(cfg.Cache)
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Error("error when closing asynq client", zap.Error(err))
		}
	}()

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})
	asynqSrv, asynqMux := asynqserver.New(cfg, workers)
	if err := asynqSrv.Start(asynqMux); err != nil {
		logger.Fatal("asynq server start failed", zap.Error(err))
	}
	logger.Info("asynq server started")

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL, redisClient, cfg.Auth.PendingRegistrationTTL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		Repos:        repos,
		Queue:        asynqClient,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg, pdf.NewGenerator(cfg.PDF.FontPath))

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	asynqSrv.Shutdown()

	logger.Info("app stopped")
}
