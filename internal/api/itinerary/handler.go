package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	appMiddleware "github.com/FACorreiaa/go-trip-itinerary/app/middleware"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	CreateItinerary(w http.ResponseWriter, r *http.Request)
	GetItinerary(w http.ResponseWriter, r *http.Request)
	ResetItinerary(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{service: service, logger: logger}
}

// ValidationResponse is the 400 body for a rejected trip request.
type ValidationResponse struct {
	Success   bool         `json:"success"`
	Error     string       `json:"error"`
	Fields    []FieldError `json:"fields"`
	RequestID string       `json:"request_id,omitempty"`
}

// CreateItinerary godoc
// @Summary      Generate an itinerary
// @Description  Validates the trip request, asks the model for a plan and stores it as the session's current plan.
// @Tags         Itinerary
// @Accept       json
// @Produce      json
// @Param        sessionID path string            true "Session ID"
// @Param        request   body types.TripRequest true "Trip parameters"
// @Success      201 {object} PlanView
// @Failure      400 {object} ValidationResponse
// @Failure      404 {object} types.Response
// @Failure      409 {object} types.Response "Generation already running or trip reset meanwhile"
// @Failure      502 {object} types.Response
// @Router       /sessions/{sessionID}/itinerary [post]
func (h *HandlerImpl) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "CreateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/sessions/{sessionID}/itinerary"),
	))
	defer span.End()
	l := h.logger.With(slog.String("handler", "CreateItinerary"))

	sess, ok := appMiddleware.GetSessionFromContext(ctx)
	if !ok {
		api.WriteError(w, r, types.ErrSessionNotFound)
		return
	}
	l = l.With(slog.String("session_id", sess.ID))
	span.SetAttributes(attribute.String("session.id", sess.ID))

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode trip request", slog.Any("error", err))
		span.SetStatus(codes.Error, "bad request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	req = Normalize(req)
	if err := Validate(req); err != nil {
		h.writeValidation(w, r, err)
		return
	}

	tok, err := sess.BeginGeneration()
	if err != nil {
		span.SetStatus(codes.Error, "session busy")
		api.WriteError(w, r, err)
		return
	}

	// The request runs to completion even if the client goes away.
	plan, err := h.service.GenerateItinerary(context.WithoutCancel(ctx), req)
	if err != nil {
		sess.AbortGeneration(tok)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.writeValidation(w, r, err)
			return
		}
		api.WriteError(w, r, err)
		return
	}

	if err := sess.FinishGeneration(tok, plan); err != nil {
		l.InfoContext(ctx, "Discarding itinerary for a reset trip", slog.Any("error", err))
		span.SetStatus(codes.Error, "stale result")
		api.WriteError(w, r, err)
		return
	}

	span.SetStatus(codes.Ok, "Itinerary created")
	api.WriteJSONResponse(w, r, http.StatusCreated, BuildView(plan))
}

func (h *HandlerImpl) writeValidation(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusBadRequest, ValidationResponse{
		Success:   false,
		Error:     verr.Error(),
		Fields:    verr.Fields,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// GetItinerary godoc
// @Summary      Current itinerary
// @Tags         Itinerary
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} PlanView
// @Failure      404 {object} types.Response
// @Failure      409 {object} types.Response "No plan yet"
// @Router       /sessions/{sessionID}/itinerary [get]
func (h *HandlerImpl) GetItinerary(w http.ResponseWriter, r *http.Request) {
	sess, ok := appMiddleware.GetSessionFromContext(r.Context())
	if !ok {
		api.WriteError(w, r, types.ErrSessionNotFound)
		return
	}
	plan := sess.Plan()
	if plan == nil {
		api.WriteError(w, r, types.ErrNoPlan)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, BuildView(plan))
}

// ResetItinerary godoc
// @Summary      Reset the trip
// @Description  Clears the plan and the chat transcript. Requests still running for the old plan are discarded.
// @Tags         Itinerary
// @Param        sessionID path string true "Session ID"
// @Success      204
// @Failure      404 {object} types.Response
// @Router       /sessions/{sessionID}/itinerary [delete]
func (h *HandlerImpl) ResetItinerary(w http.ResponseWriter, r *http.Request) {
	sess, ok := appMiddleware.GetSessionFromContext(r.Context())
	if !ok {
		api.WriteError(w, r, types.ErrSessionNotFound)
		return
	}
	sess.Reset()
	h.logger.InfoContext(r.Context(), "Trip reset", slog.String("session_id", sess.ID))
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
