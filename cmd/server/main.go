package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shiksha/internal/config"
	"shiksha/internal/email/noop"
	"shiksha/internal/email/ses"
	"shiksha/internal/extract"
	"shiksha/internal/genai"
	"shiksha/internal/genai/gemini"
	"shiksha/internal/handler"
	"shiksha/internal/port"
	"shiksha/internal/repository/postgres"
	"shiksha/internal/router"
	"shiksha/internal/service"
	s3storage "shiksha/internal/storage/s3"
)

// @title Shiksha API
// @version 1.0
// @description Multi-school educational content manager with AI-assisted generation.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token. Format: Bearer <token>
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	schoolRepo := postgres.NewSchoolRepo(db)
	userRepo := postgres.NewUserRepo(db)
	classRepo := postgres.NewClassRepo(db)
	subjectRepo := postgres.NewSubjectRepo(db)
	topicRepo := postgres.NewTopicRepo(db)
	contentRepo := postgres.NewGeneratedContentRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)
	resetRepo := postgres.NewPasswordResetRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	sender, err := newEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize content generator with provider fallback
	genai.RegisterProvider("gemini", func(pc *config.GenAIProviderConfig) (port.ContentGenerator, error) {
		return gemini.NewGenerator(pc), nil
	})
	generator, err := newGenerator(&cfg.GenAI)
	if err != nil {
		return fmt.Errorf("failed to initialize content generator: %w", err)
	}

	extractor := extract.New(extract.Config{
		MaxFileSizeMB:      cfg.Extract.MaxFileSizeMB,
		MaxBatchFileSizeMB: cfg.Extract.MaxBatchFileSizeMB,
	})

	// Initialize services
	authSvc := service.NewAuthService(userRepo, schoolRepo, cfg.JWT)
	resetSvc := service.NewPasswordResetService(schoolRepo, userRepo, resetRepo, sender)
	schoolSvc := service.NewSchoolService(schoolRepo, userRepo, sender)
	userSvc := service.NewUserService(userRepo)
	classSvc := service.NewClassService(classRepo)
	subjectSvc := service.NewSubjectService(subjectRepo, classRepo)
	topicSvc := service.NewTopicService(topicRepo, subjectRepo)
	generationSvc := service.NewGenerationService(generator, contentRepo, topicRepo, subjectRepo, classRepo)
	uploadSvc := service.NewUploadService(fileRepo, topicRepo, s3Client, extractor, &cfg.S3)

	autosaver := service.NewAutosaver(topicRepo, cfg.Autosave.Debounce)

	retry := service.RetryPolicy{
		Attempts:  cfg.Retry.Attempts,
		BaseDelay: cfg.Retry.BaseDelay,
	}

	// Initialize handlers
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, resetSvc),
		School:     handler.NewSchoolHandler(schoolSvc),
		User:       handler.NewUserHandler(userSvc),
		Class:      handler.NewClassHandler(classSvc),
		Subject:    handler.NewSubjectHandler(subjectSvc),
		Topic:      handler.NewTopicHandler(topicSvc, autosaver, retry),
		Generation: handler.NewGenerationHandler(generationSvc),
		Upload:     handler.NewUploadHandler(uploadSvc),
		Export:     handler.NewExportHandler(generationSvc, topicSvc),
		Health:     handler.NewHealthHandler(db),
	}

	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, h)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	// Persist any pending topic drafts before exiting.
	autosaver.Close(shutdownCtx)

	return nil
}

func newEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName, cfg.FrontendURL)
	default:
		return noop.NewNoopSender(cfg.FrontendURL), nil
	}
}

// newGenerator builds the provider chain: the secondary provider, when
// configured, takes over on quota and availability errors from the primary.
func newGenerator(cfg *config.GenAIConfig) (port.ContentGenerator, error) {
	primary, err := genai.NewGenerator(cfg.PrimaryConfig())
	if err != nil {
		return nil, err
	}

	generators := []port.ContentGenerator{primary}
	names := []string{cfg.Primary.Provider}

	if sc := cfg.SecondaryConfig(); sc != nil {
		secondary, err := genai.NewGenerator(sc)
		if err != nil {
			return nil, err
		}
		generators = append(generators, secondary)
		names = append(names, sc.Provider)
	}

	return genai.NewFallbackGenerator(generators, names), nil
}
