package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/api"
	"github.com/dvieira/portfolio-be/internal/auth"
	"github.com/dvieira/portfolio-be/internal/config"
	"github.com/dvieira/portfolio-be/internal/database"
	"github.com/dvieira/portfolio-be/internal/github"
	"github.com/dvieira/portfolio-be/internal/logger"
	"github.com/dvieira/portfolio-be/internal/mailer"
	"github.com/dvieira/portfolio-be/internal/monitoring"
	"github.com/dvieira/portfolio-be/internal/services"
	"github.com/dvieira/portfolio-be/internal/unsplash"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	adminService := services.NewAdminService(db)

	var covers services.CoverImageFinder
	if cfg.UnsplashAccessKey != "" {
		covers = unsplash.New(cfg.UnsplashAccessKey)
	}
	projectService := services.NewProjectService(db, covers)
	skillService := services.NewSkillService(db)
	experienceService := services.NewExperienceService(db)
	achievementService := services.NewAchievementService(db)

	var mail services.MailSender
	if m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.NotifyEmail); m != nil {
		mail = m
	}
	messageService := services.NewMessageService(db, mail)

	profileService := services.NewProfileService(db)
	uploadService := services.NewUploadService(db, cfg.UploadDir, cfg.PublicBaseURL)
	repoService := services.NewRepoService(db, github.NewClient(cfg.GithubToken), adminService)

	// Provision the admin account on first start
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		admin, err := adminService.EnsureAdmin(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminGithub)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to provision admin account")
		}
		log.Info().Str("username", admin.Username).Msg("Admin account ready")
	}

	authn := auth.New([]byte(cfg.JWTSecret), adminService)

	// Set up and run the background GitHub repo syncer
	repoSyncer, err := monitoring.NewRepoSyncer(repoService, cfg.GithubSyncCron)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid GITHUB_SYNC_CRON expression")
	}
	go repoSyncer.Run()

	// Set up router
	router := api.NewRouter(api.Deps{
		Auth:        authn,
		Admins:      adminService,
		Projects:    projectService,
		Skills:      skillService,
		Experiences: experienceService,
		Achievement: achievementService,
		Messages:    messageService,
		Profile:     profileService,
		Uploads:     uploadService,
		Repos:       repoService,
		UploadDir:   cfg.UploadDir,
		FrontendURL: cfg.FrontendURL,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	repoSyncer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
