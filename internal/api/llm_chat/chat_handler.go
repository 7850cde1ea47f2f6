package llmChat

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	appMiddleware "github.com/FACorreiaa/go-trip-itinerary/app/middleware"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// MaxMessageLength bounds one chat message, in runes.
const MaxMessageLength = 2000

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
	GetTranscript(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{service: service, logger: logger}
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply      string              `json:"reply"`
	Transcript []types.ChatMessage `json:"transcript"`
}

// SendMessage godoc
// @Summary      Ask the travel assistant
// @Description  Sends one message about the current plan. Model failures come back as a fixed apology, never as an error.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        sessionID path string      true "Session ID"
// @Param        request   body ChatRequest true "Message"
// @Success      200 {object} ChatResponse
// @Failure      400 {object} types.Response
// @Failure      404 {object} types.Response
// @Failure      409 {object} types.Response "No plan, chat busy, or trip reset meanwhile"
// @Router       /sessions/{sessionID}/chat [post]
func (h *HandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "SendMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/sessions/{sessionID}/chat"),
	))
	defer span.End()
	l := h.logger.With(slog.String("handler", "SendMessage"))

	sess, ok := appMiddleware.GetSessionFromContext(ctx)
	if !ok {
		api.WriteError(w, r, types.ErrSessionNotFound)
		return
	}
	span.SetAttributes(attribute.String("session.id", sess.ID))

	var req ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode chat request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message must not be empty")
		return
	}
	if len([]rune(message)) > MaxMessageLength {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message is too long")
		return
	}

	tok, plan, history, err := sess.BeginChat()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		api.WriteError(w, r, err)
		return
	}

	reply := h.service.Chat(context.WithoutCancel(ctx), plan, history, message, plan.Language)

	if err := sess.FinishChat(tok, message, reply); err != nil {
		l.InfoContext(ctx, "Discarding chat reply for a reset trip", slog.String("session_id", sess.ID))
		span.SetStatus(codes.Error, "stale result")
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, ChatResponse{
		Reply:      reply,
		Transcript: sess.Transcript(),
	})
}

// GetTranscript godoc
// @Summary      Chat transcript for the current plan
// @Tags         Chat
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {array} types.ChatMessage
// @Failure      404 {object} types.Response
// @Router       /sessions/{sessionID}/chat [get]
func (h *HandlerImpl) GetTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := appMiddleware.GetSessionFromContext(r.Context())
	if !ok {
		api.WriteError(w, r, types.ErrSessionNotFound)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, sess.Transcript())
}
