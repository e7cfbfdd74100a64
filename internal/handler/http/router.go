package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrcore/leave-backend-go/internal/domain/user"
	"github.com/hrcore/leave-backend-go/internal/handler/http/middleware"
	"github.com/hrcore/leave-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	clientHandler ClientHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-backend"),
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
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RoleRequired(user.RoleAdmin, user.RoleHR))
					r.Post("/", employeeHandler.Create)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RoleRequired(user.RoleAdmin, user.RoleHR, user.RoleManager))
					r.Get("/", employeeHandler.List)
					r.Get("/{empId}", employeeHandler.Get)
					r.Get("/{empId}/accruals", employeeHandler.AccrualHistory)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RoleRequired(user.RoleAdmin, user.RoleHR, user.RoleManager))
					r.Post("/resolve", leaveHandler.Resolve)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RoleRequired(user.RoleAdmin, user.RoleHR))
					r.Post("/", holidayHandler.Create)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RoleRequired(user.RoleAdmin, user.RoleHR, user.RoleManager))
					r.Get("/", clientHandler.List)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RoleRequired(user.RoleAdmin, user.RoleHR))
					r.Post("/", clientHandler.Create)
					r.Put("/{id}", clientHandler.Update)
					r.Delete("/{id}", clientHandler.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RoleRequired(user.RoleAdmin))
					r.Get("/{id}/secret", clientHandler.GetSecret)
				})
			})
		})
	})

	return r
}
