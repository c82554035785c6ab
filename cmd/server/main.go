package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/app"
	"github.com/mapmyojt/mapmyojt/internal/config"
	"github.com/mapmyojt/mapmyojt/internal/controller"
	"github.com/mapmyojt/mapmyojt/internal/enhance"
	"github.com/mapmyojt/mapmyojt/internal/seed"
	"github.com/mapmyojt/mapmyojt/internal/service"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

// Имитируемая задержка сохранения профиля (как в веб-клиенте)
const profileSaveLatency = 800 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting MapMyOJT server",
		"environment", cfg.Environment,
		"addr", cfg.HTTPAddr)

	data := seed.MustLoad()

	// Сторы живут в памяти и после logout сбрасываются к seed-состоянию
	users := store.NewUserStore(data.Users)
	postings := store.NewPostingStore(data.Postings)
	logs := store.NewLogStore(data.Logs)
	messages := store.NewMessageStore(data.Messages)
	sessions := store.NewSessionStore(cfg.SessionFile)

	// Внешний сервис улучшения текста. Без ключа — выключен,
	// отчёты сохраняются с исходным текстом.
	var enhancer service.Enhancer
	if cfg.GeminiAPIKey != "" {
		client, err := enhance.NewClient(enhance.Config{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			Timeout: cfg.EnhanceTimeout,
		})
		if err != nil {
			log.Fatalf("Failed to create enhance client: %v", err)
		}
		enhancer = client
	} else {
		logger.Warn("GEMINI_API_KEY is not set, text enhancement disabled")
	}

	sessionService := service.NewSessionService(sessions, users, logger)
	postingService := service.NewPostingService(postings, logger)
	worklogService := service.NewWorkLogService(logs, enhancer, cfg.EnhanceTimeout, cfg.RequiredHours, logger)
	messageService := service.NewMessageService(messages, logger)
	profileService := service.NewProfileService(sessionService, profileSaveLatency, logger)
	verificationService := service.NewVerificationService(users, sessionService, logger)

	sessionService.OnLogout(func() {
		fresh := seed.MustLoad()
		users.Reset(fresh.Users)
		postings.Reset(fresh.Postings)
		logs.Reset(fresh.Logs)
		messages.Reset(fresh.Messages)
	})

	// Восстанавливаем сессию из локального хранилища
	if err := sessionService.Restore(); err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	}

	router := controller.NewRouter(controller.RouterDependencies{
		Sessions:      sessionService,
		Postings:      postingService,
		WorkLogs:      worklogService,
		Messages:      messageService,
		Profiles:      profileService,
		Verifications: verificationService,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
