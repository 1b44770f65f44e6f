// Package router assembles the HTTP surface of the service
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/config"
	"github.com/promco/backend/internal/handlers"
	loggerMiddleware "github.com/promco/backend/internal/logger/middleware"
	"github.com/promco/backend/internal/middlewares"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// maxRequestSize bounds JSON request bodies
const maxRequestSize = 1 << 20

// Handlers groups every handler mounted by New
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UsersHandler
	Machines   *handlers.MachinesHandler
	Parameters *handlers.ParametersHandler
}

// New builds the root router.
// Unknown paths under /api go through the gate, so an unauthenticated caller
// gets the same 401 whether or not the resource exists.
func New(cfg *config.Config, gate *middleware.Gate, h Handlers, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger))
	r.Use(middlewares.RecoveryMiddleware(logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	if cfg.RateLimit.Global > 0 {
		r.Use(httprate.Limit(
			cfg.RateLimit.Global,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				middlewares.WriteError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			}),
		))
	}
	r.Use(middlewares.BodyLimit(maxRequestSize))

	r.NotFound(notFound)

	h.Health.RegisterRoutes(r)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.NotFound(gate.Authenticate(http.HandlerFunc(notFound)).ServeHTTP)
		r.MethodNotAllowed(gate.Authenticate(http.HandlerFunc(methodNotAllowed)).ServeHTTP)

		h.Auth.RegisterRoutes(r)
		h.Users.RegisterRoutes(r)
		h.Machines.RegisterRoutes(r)
		h.Parameters.RegisterRoutes(r)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	middlewares.WriteError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	middlewares.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
