package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/zenai/backend/api/handler"
	"github.com/zenai/backend/internal/ai"
	"github.com/zenai/backend/internal/config"
	"github.com/zenai/backend/internal/infrastructure/monitor"
	"github.com/zenai/backend/internal/middleware"
	"github.com/zenai/backend/internal/router"
	"github.com/zenai/backend/internal/services/lifecycle"
	"github.com/zenai/backend/pkg/httpcontext"
	"github.com/zenai/backend/pkg/logger"
	"github.com/zenai/backend/repository/bolt"
	authUC "github.com/zenai/backend/usecase/auth"
	insightUC "github.com/zenai/backend/usecase/insight"
	profileUC "github.com/zenai/backend/usecase/profile"
	taskUC "github.com/zenai/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := bolt.Open(cfg.Store.Path, cfg.Store.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.Error(err))
	}
	manager.Register("store", func(ctx context.Context) error {
		return store.Close()
	})

	mon := monitor.New(store, cfg.Store.CheckInterval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := bolt.NewUserRepository(store)
	taskRepo := bolt.NewTaskRepository(store)
	sessionRepo := bolt.NewSessionRepository(store, cfg.JWT.SessionTTL)

	var generator insightUC.Generator = ai.Disabled{}
	if cfg.Insight.APIKey != "" {
		client, err := ai.NewClient(appCtx, cfg.Insight.APIKey, cfg.Insight.Model)
		if err != nil {
			zapLogger.Warn("insight client unavailable, falling back", zap.Error(err))
		} else {
			generator = client
			manager.Register("genai", func(ctx context.Context) error {
				return client.Close()
			})
		}
	}

	authUseCase := authUC.New(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.SessionTTL, zapLogger)
	profileUseCase := profileUC.New(userRepo, taskRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, profileUseCase, zapLogger)
	insightUseCase := insightUC.New(taskRepo, generator, cfg.Insight.Timeout, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Profile: apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Task:    apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Insight: apiHandler.NewInsightHandler(insightUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
