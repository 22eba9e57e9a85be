package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dvieira/portfolio-be/internal/api/handlers"
	"github.com/dvieira/portfolio-be/internal/auth"
	"github.com/dvieira/portfolio-be/internal/services"
)

// Deps bundles everything the router needs.
type Deps struct {
	Auth        *auth.Auth
	Admins      services.AdminServiceProvider
	Projects    services.ProjectServiceProvider
	Skills      services.SkillServiceProvider
	Experiences services.ExperienceServiceProvider
	Achievement services.AchievementServiceProvider
	Messages    services.MessageServiceProvider
	Profile     services.ProfileServiceProvider
	Uploads     services.UploadServiceProvider
	Repos       services.RepoServiceProvider
	UploadDir   string
	FrontendURL string
}

// NewRouter creates and configures a new Chi router. Public reads are open;
// every mutating or admin-only route sits behind the auth gate.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(d.Admins, d.Auth)
	projectHandler := handlers.NewProjectHandler(d.Projects)
	skillHandler := handlers.NewSkillHandler(d.Skills)
	experienceHandler := handlers.NewExperienceHandler(d.Experiences)
	achievementHandler := handlers.NewAchievementHandler(d.Achievement)
	messageHandler := handlers.NewMessageHandler(d.Messages)
	profileHandler := handlers.NewProfileHandler(d.Profile)
	uploadHandler := handlers.NewUploadHandler(d.Uploads)
	githubHandler := handlers.NewGithubHandler(d.Repos)
	systemHandler := handlers.NewSystemHandler()

	gate := d.Auth.Middleware()

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.With(gate).Get("/auth/me", authHandler.Me)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.GetAll)
			r.With(gate).Post("/", projectHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", projectHandler.Get)
				r.With(gate).Put("/", projectHandler.Update)
				r.With(gate).Delete("/", projectHandler.Delete)
			})
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", skillHandler.GetAll)
			r.With(gate).Post("/", skillHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", skillHandler.Get)
				r.With(gate).Put("/", skillHandler.Update)
				r.With(gate).Delete("/", skillHandler.Delete)
			})
		})

		r.Route("/experience", func(r chi.Router) {
			r.Get("/", experienceHandler.GetAll)
			r.With(gate).Post("/", experienceHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", experienceHandler.Get)
				r.With(gate).Put("/", experienceHandler.Update)
				r.With(gate).Delete("/", experienceHandler.Delete)
			})
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", achievementHandler.GetAll)
			r.With(gate).Post("/", achievementHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", achievementHandler.Get)
				r.With(gate).Put("/", achievementHandler.Update)
				r.With(gate).Delete("/", achievementHandler.Delete)
			})
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", messageHandler.Create) // public contact form
			r.With(gate).Get("/", messageHandler.GetAll)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(gate)
				r.Get("/", messageHandler.Get)
				r.Put("/read", messageHandler.MarkRead)
				r.Delete("/", messageHandler.Delete)
			})
		})

		r.Get("/about", profileHandler.GetAbout)
		r.With(gate).Put("/about", profileHandler.UpdateAbout)
		r.Get("/contact", profileHandler.GetContact)
		r.With(gate).Put("/contact", profileHandler.UpdateContact)

		r.Route("/uploads", func(r chi.Router) {
			r.Use(gate)
			r.Get("/", uploadHandler.GetAll)
			r.Post("/", uploadHandler.Create)
			r.Delete("/", uploadHandler.Delete)
		})

		r.Route("/github", func(r chi.Router) {
			r.Use(gate)
			r.Get("/repos", githubHandler.GetRepos)
			r.Post("/sync", githubHandler.Sync)
		})

		r.With(gate).Get("/system/stats", systemHandler.Stats)
	})

	// Uploaded files are public once stored.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}
