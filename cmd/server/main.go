package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CT-MUSICAL/internal"
	"CT-MUSICAL/internal/config"
	"CT-MUSICAL/internal/handlers"
	"CT-MUSICAL/internal/observability"
	"CT-MUSICAL/internal/services"
	"CT-MUSICAL/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Server.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx := context.Background()

	deps := services.ContractDeps{
		OutputDir: cfg.Contract.OutputDir,
		Logger:    logger,
	}

	records := services.NewRecordService(nil)
	if cfg.Database.Enabled() {
		if err := internal.InitDB(cfg, logger); err != nil {
			logger.Fatal("failed to initialize database", zap.Error(err))
		}
		defer internal.CloseDB()
		records = services.NewRecordService(internal.DB)
		deps.Records = records
	} else {
		logger.Info("DB_HOST not set; contract history disabled")
	}

	if cfg.GCS.Enabled() {
		gcs, err := storage.NewGCSClient(rootCtx, cfg.GCS.BucketName, cfg.GCS.ProjectID, cfg.GCS.CredentialsPath)
		if err != nil {
			logger.Fatal("failed to initialize GCS client", zap.Error(err))
		}
		defer gcs.Close()
		deps.Archive = gcs
	} else {
		logger.Info("GCS_BUCKET_NAME not set; archive disabled")
	}

	if cfg.Gotenberg.Enabled() {
		pdf, err := services.NewPDFService(cfg.Gotenberg.URL, cfg.Gotenberg.Timeout, logger)
		if err != nil {
			logger.Fatal("failed to initialize PDF service", zap.Error(err))
		}
		deps.PDF = pdf
	} else {
		logger.Info("GOTENBERG_URL not set; PDF export disabled")
	}

	templates := services.NewTemplateService(cfg.Contract.TemplatePath, cfg.Upload.Dir, logger)
	deps.Templates = templates

	router := handlers.NewRouter(handlers.RouterDeps{
		Contracts:    services.NewContractService(deps),
		Templates:    templates,
		CEP:          services.NewCEPService(cfg.CEP.BaseURL, cfg.CEP.Timeout, logger),
		History:      records,
		AllowOrigins: cfg.Server.AllowOrigins,
		Logger:       logger,
	})

	cleanupService := handlers.NewFileCleanupService(cfg.Upload.Dir, cfg.Upload.MaxAge, time.Hour, logger)
	cleanupService.Start()
	defer cleanupService.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("server listening",
		zap.String("addr", srv.Addr),
		zap.String("environment", cfg.Server.Environment),
		zap.String("template", cfg.Contract.TemplatePath),
		zap.String("output_dir", cfg.Contract.OutputDir),
	)

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
