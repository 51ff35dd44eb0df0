package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/crewlog/crewlog-backend/internal/handler/http/middleware"
	"github.com/crewlog/crewlog-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth     AuthHandler
	User     UserHandler
	Project  ProjectHandler
	Timelog  TimelogHandler
	Vacation VacationHandler
	Worklog  WorklogHandler
	Holiday  HolidayHandler
	Catalog  CatalogHandler
	Mail     MailHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewlog-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
					r.Get("/google/callback", h.Auth.OAuthCallbackGoogle)
				})
			})
		})

		// Public site endpoints
		r.Get("/facilities", h.Catalog.ListFacilities)
		r.Get("/feedbacks", h.Catalog.ListFeedbacks)
		r.Post("/feedbacks", h.Catalog.CreateFeedback)
		r.Post("/mail", h.Mail.SendContact)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Put("/auth/password", h.Auth.ChangePassword)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.User.List)
				r.Get("/{id}", h.User.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.User.Create)
					r.Put("/{id}", h.User.Update)
					r.Put("/{id}/terminate", h.User.Terminate)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.Find)
				r.Get("/{id}", h.Project.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Project.Create)
					r.Put("/{id}", h.Project.Update)
					r.Delete("/{id}", h.Project.Delete)
				})
			})

			r.Route("/stacks", func(r chi.Router) {
				r.Get("/", h.Catalog.ListStacks)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Catalog.CreateStack)
					r.Delete("/{id}", h.Catalog.DeleteStack)
				})
			})

			r.Route("/timelogs", func(r chi.Router) {
				r.Post("/{projectID}", h.Timelog.Create)
				r.Get("/{id}", h.Timelog.Get)
				r.Put("/{id}", h.Timelog.Change)
				r.Delete("/{id}", h.Timelog.Delete)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", h.Vacation.Create)
				r.Get("/count/{uid}", h.Vacation.VacationCount)
				r.Get("/sick/count/{uid}", h.Vacation.SickCount)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwnerPosition)
					r.Get("/requests", h.Vacation.Pending)
					r.Put("/{id}", h.Vacation.StatusChange)
				})
			})

			r.Route("/logs", func(r chi.Router) {
				r.Get("/{first}/{logType}", h.Worklog.FindLogs)
				r.Get("/solo/{first}/{logType}", h.Worklog.FindLogsByDate)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			// Admin-side content management
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/facilities", h.Catalog.CreateFacility)
				r.Put("/facilities/{id}", h.Catalog.UpdateFacility)
				r.Delete("/facilities/{id}", h.Catalog.DeleteFacility)
				r.Put("/feedbacks/{id}", h.Catalog.SetFeedbackShown)
				r.Delete("/feedbacks/{id}", h.Catalog.DeleteFeedback)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
