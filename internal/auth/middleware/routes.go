package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/promco/backend/internal/models"
)

// AnyRole marks a route open to every authenticated caller
var AnyRole []models.Role

// Route is the declarative description of one endpoint and who may call it
type Route struct {
	Method  string
	Pattern string
	// Public routes skip the gate entirely
	Public bool
	// Roles is the allow-list; empty means any authenticated role
	Roles []models.Role
	// Middlewares run before the gate, e.g. a per-route rate limit
	Middlewares []func(http.Handler) http.Handler
	Handler     http.HandlerFunc
}

// Mount registers routes on r, putting every non-public route behind the gate
func (g *Gate) Mount(r chi.Router, routes []Route) {
	for _, rt := range routes {
		router := r.With(rt.Middlewares...)
		if !rt.Public {
			router = router.With(g.Require(rt.Roles...))
		}
		router.Method(rt.Method, rt.Pattern, rt.Handler)
	}
}
