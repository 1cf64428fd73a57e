package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workzen/workzen-backend-go/internal/handler/http/middleware"
	"github.com/workzen/workzen-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	userHandler UserHandler,
	achievementHandler AchievementHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workzen"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", authHandler.ChangePassword)

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.List)
				r.Get("/my", leaveHandler.ListMine)
				r.Get("/stats", leaveHandler.Stats)
				r.Get("/balances", leaveHandler.Balances)

				r.Delete("/documents/{documentID}", leaveHandler.DetachDocument)

				r.Route("/{leaveID}", func(r chi.Router) {
					r.Get("/", leaveHandler.Get)
					r.Get("/documents", leaveHandler.ListDocuments)
					r.Post("/documents", leaveHandler.AttachDocument)

					// Approvers only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Post("/approve", leaveHandler.Approve)
						r.Post("/reject", leaveHandler.Reject)
					})
				})
			})

			r.Route("/achievements", func(r chi.Router) {
				r.Post("/", achievementHandler.Upload)
				r.Get("/", achievementHandler.List)
				r.Delete("/{achievementID}", achievementHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/{userID}", userHandler.Get)

				// HOD only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Put("/{userID}/counselor", userHandler.AssignCounselor)
				})
			})
		})
	})
	return r
}
