// Package httpapi is the raw-handler transport: the same API the gin
// binary serves, expressed as chi routes over plain net/http handlers.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"sessiondesk/internal/config"
	"sessiondesk/internal/modules/auth"
	"sessiondesk/internal/modules/booking"
	"sessiondesk/internal/modules/catalog"
	"sessiondesk/internal/modules/opencall"
	"sessiondesk/internal/modules/social"
	"sessiondesk/internal/pkg/logger"
)

type Dependencies struct {
	Cfg       *config.Config
	Auth      *auth.Service
	Catalog   *catalog.Service
	Bookings  *booking.Service
	Social    *social.Service
	OpenCalls *opencall.Service
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400,
	}))

	h := &handlers{deps: deps}

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/signup", h.Signup)

		r.Get("/studios", h.ListStudios)
		r.Post("/studios", h.CreateOrUpdateStudio)
		r.Get("/studios/{id}", h.GetStudio)
		r.Put("/studios/{id}", h.UpdateStudio)

		r.Get("/booking-requests", h.ListBookingRequests)
		r.Post("/booking-requests", h.CreateBookingRequest)
		r.Put("/booking-requests/{id}", h.DecideBookingRequest)

		r.Get("/bookings", h.ListBookings)
		r.Get("/bookings/{id}", h.GetBooking)
		r.Put("/bookings/{id}/cancel", h.CancelBooking)

		r.Get("/users/{id}", h.GetUser)
		r.Put("/users/{id}", h.UpdateUser)
		r.Get("/users/{id}/studios", h.UserStudios)
		r.Get("/users/{id}/followers", h.Followers)
		r.Get("/users/{id}/follow-status/{targetId}", h.FollowStatus)

		r.Post("/follow", h.ToggleFollow)
		r.Get("/follow/following/{id}", h.Following)

		r.Get("/open-calls", h.ListOpenCalls)
		r.Post("/open-calls", h.CreateOpenCall)
		r.Get("/open-calls/{id}", h.GetOpenCall)
		r.Put("/open-calls/{id}", h.UpdateOpenCall)
		r.Delete("/open-calls/{id}", h.DeleteOpenCall)
		r.Post("/open-calls/{id}/apply", h.ApplyToOpenCall)
	})

	return r
}

type handlers struct {
	deps Dependencies
}

func (h *handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
