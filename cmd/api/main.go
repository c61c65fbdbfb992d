package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/career-path-advisor/internal/config"
	"github.com/justsurfingit/career-path-advisor/internal/database"
	"github.com/justsurfingit/career-path-advisor/internal/handlers"
	"github.com/justsurfingit/career-path-advisor/internal/logger"
	"github.com/justsurfingit/career-path-advisor/internal/services"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database connection
	store, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName, log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}

	// 3. Core services
	generator, err := services.NewTextGenerator(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("llm client setup failed")
	}
	llmService := services.NewLLMService(generator, log)
	careerService := services.NewCareerService(store, llmService, log)
	resumeService := services.NewResumeService(log)

	// 4. Router
	router := handlers.NewRouter(handlers.Deps{
		Log:    log,
		Store:  store,
		Career: careerService,
		Resume: resumeService,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":     srv.Addr,
			"provider": cfg.LLMProvider,
			"model":    cfg.LLMModel,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.WithError(err).Error("database close")
	}
	log.Info("server stopped")
}
