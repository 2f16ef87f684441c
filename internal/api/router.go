package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/estate-api/internal/access"
	"github.com/baharkarakas/estate-api/internal/api/handlers"
	"github.com/baharkarakas/estate-api/internal/auth"
	"github.com/baharkarakas/estate-api/internal/config"
	"github.com/baharkarakas/estate-api/internal/metrics"
	"github.com/baharkarakas/estate-api/internal/middleware"
	"github.com/baharkarakas/estate-api/internal/services"
)

type RouterDeps struct {
	Cfg         config.Config
	TM          *auth.TokenManager
	UserSvc     *services.UserService
	PropertySvc *services.PropertyService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RequestLog, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	// health & metrics
	r.Get("/", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("Real Estate API is running")) })
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.UserSvc)
	propH := handlers.NewPropertyHandler(d.PropertySvc)
	am := middleware.NewAuthMiddleware(d.TM)

	r.Route("/api", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		// ---------- properties ----------
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propH.List)
			r.Get("/{id}", propH.Get)

			r.Group(func(r chi.Router) {
				r.Use(am.Auth)
				r.With(middleware.RequireRole(access.OpCreate)).Post("/", propH.Create)
				r.With(middleware.RequireRole(access.OpUpdate)).Put("/{id}", propH.Update)
				r.With(middleware.RequireRole(access.OpDelete)).Delete("/{id}", propH.Delete)
			})
		})
	})

	return r
}
