package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appMiddleware "github.com/FACorreiaa/go-trip-itinerary/app/middleware"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/datepicker"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/itinerary"
	llmChat "github.com/FACorreiaa/go-trip-itinerary/internal/api/llm_chat"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/session"
)

// Config contains dependencies needed for the router setup
type Config struct {
	SessionHandler    session.Handler
	ItineraryHandler  itinerary.Handler
	ChatHandler       llmChat.Handler
	DatePickerHandler datepicker.Handler
	Sessions          appMiddleware.SessionLookup
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, request id, recoverer) is applied in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	limit := appMiddleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", cfg.DatePickerHandler.GetCalendar)
			r.Post("/select", cfg.DatePickerHandler.SelectDate)
			r.Post("/clear", cfg.DatePickerHandler.ClearSelection)
		})

		r.Post("/sessions", cfg.SessionHandler.CreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", cfg.SessionHandler.GetSession)

			r.Group(func(r chi.Router) {
				r.Use(appMiddleware.SessionCtx(cfg.Sessions))

				r.Get("/itinerary", cfg.ItineraryHandler.GetItinerary)
				r.Delete("/itinerary", cfg.ItineraryHandler.ResetItinerary)
				r.Get("/chat", cfg.ChatHandler.GetTranscript)

				r.With(limit).Post("/itinerary", cfg.ItineraryHandler.CreateItinerary)
				r.With(limit).Post("/chat", cfg.ChatHandler.SendMessage)
			})
		})
	})

	return r
}
