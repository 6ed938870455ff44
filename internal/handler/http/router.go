package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/clubops/clubops-backend-go/internal/handler/http/middleware"
	"github.com/clubops/clubops-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	clubHandler ClubHandler,
	employeeHandler EmployeeHandler,
	compensationHandler CompensationHandler,
	shiftHandler ShiftHandler,
	maintenanceHandler MaintenanceHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clubops"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/clubs/my", func(r chi.Router) {
				r.Get("/", clubHandler.GetMy)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Put("/", clubHandler.UpdateMy)
					r.Delete("/", clubHandler.DeleteMy)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Get("/shifts", shiftHandler.ListByEmployee)
					r.Get("/maintenance-tasks", maintenanceHandler.ListEmployeeTasks)
					r.Get("/kpi-summary", maintenanceHandler.MonthlySummary)

					// Owner only
					r.Group(func(r chi.Router) {
						r.Use(middleware.OwnerOnly)
						r.Post("/scheme", employeeHandler.AssignScheme)
					})
				})
			})

			r.Route("/schemes", func(r chi.Router) {
				r.Get("/", compensationHandler.ListSchemes)
				r.Get("/{schemeID}", compensationHandler.GetScheme)
				r.Post("/{schemeID}/preview", compensationHandler.PreviewSalary)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Post("/", compensationHandler.CreateScheme)
					r.Post("/{schemeID}/versions", compensationHandler.CreateVersion)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Post("/", shiftHandler.Open)
				r.Get("/{shiftID}", shiftHandler.Get)
				r.Post("/{shiftID}/close", shiftHandler.Close)
			})

			r.Route("/maintenance", func(r chi.Router) {
				r.Route("/tasks", func(r chi.Router) {
					r.Get("/", maintenanceHandler.ListTasks)
					r.Post("/", maintenanceHandler.CreateTask)
					r.Get("/{taskID}", maintenanceHandler.GetTask)
					r.Post("/{taskID}/complete", maintenanceHandler.CompleteTask)

					// Owner only
					r.Group(func(r chi.Router) {
						r.Use(middleware.OwnerOnly)
						r.Post("/{taskID}/reject", maintenanceHandler.RejectTask)
						r.Post("/{taskID}/approve", maintenanceHandler.ApproveTask)
					})
				})

				r.Route("/kpi-config", func(r chi.Router) {
					r.Get("/", maintenanceHandler.GetConfig)

					// Owner only
					r.Group(func(r chi.Router) {
						r.Use(middleware.OwnerOnly)
						r.Put("/", maintenanceHandler.UpdateConfig)
					})
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
