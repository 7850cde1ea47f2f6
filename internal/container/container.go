package container

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/go-trip-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-itinerary/config"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/datepicker"
	generativeAI "github.com/FACorreiaa/go-trip-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/itinerary"
	llmChat "github.com/FACorreiaa/go-trip-itinerary/internal/api/llm_chat"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/session"
	"github.com/FACorreiaa/go-trip-itinerary/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *slog.Logger
	Sessions          *session.Store
	SessionHandler    *session.HandlerImpl
	ItineraryHandler  *itinerary.HandlerImpl
	ChatHandler       *llmChat.HandlerImpl
	DatePickerHandler *datepicker.HandlerImpl
}

// NewContainer wires services and handlers. A missing model credential does not
// stop startup; generation and chat calls fail per request instead.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) *Container {
	var generator itinerary.ContentGenerator
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model)
	if err != nil {
		logger.WarnContext(ctx, "Generative client unavailable, model calls will fail", slog.Any("error", err))
		generator = generativeAI.Unavailable{Err: err}
	} else {
		logger.InfoContext(ctx, "Generative client ready", slog.String("model", aiClient.Model()))
		generator = aiClient
	}

	return NewContainerWithGenerator(cfg, logger, m, generator)
}

// NewContainerWithGenerator wires everything around an existing generator.
func NewContainerWithGenerator(cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics, generator itinerary.ContentGenerator) *Container {
	sessions := session.NewStore(logger, cfg.Session.TTL, cfg.Session.CleanupInterval, m)

	itineraryService := itinerary.NewServiceImpl(logger, generator, m, cfg.GenAI.Temperature)
	chatService := llmChat.NewServiceImpl(logger, generator, m)

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Sessions:          sessions,
		SessionHandler:    session.NewHandlerImpl(sessions, logger),
		ItineraryHandler:  itinerary.NewHandlerImpl(itineraryService, logger),
		ChatHandler:       llmChat.NewHandlerImpl(chatService, logger),
		DatePickerHandler: datepicker.NewHandlerImpl(logger),
	}
}

// RouterConfig exposes the wired handlers to the router.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		SessionHandler:    c.SessionHandler,
		ItineraryHandler:  c.ItineraryHandler,
		ChatHandler:       c.ChatHandler,
		DatePickerHandler: c.DatePickerHandler,
		Sessions:          c.Sessions,
		AllowedOrigins:    c.Config.Server.AllowedOrigins,
		RateLimitRequests: c.Config.RateLimit.Requests,
		RateLimitWindow:   c.Config.RateLimit.Window,
	}
}
