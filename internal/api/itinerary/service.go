package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-trip-itinerary/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-trip-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// ErrEmptyResponse means the model answered without any text.
var ErrEmptyResponse = errors.New("no data received from model")

// ContentGenerator is the slice of the genai client the services need.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.TripPlan, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	aiClient    ContentGenerator
	metrics     *metrics.AppMetrics
	temperature float32
}

func NewServiceImpl(logger *slog.Logger, aiClient ContentGenerator, m *metrics.AppMetrics, temperature float32) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		aiClient:    aiClient,
		metrics:     m,
		temperature: temperature,
	}
}

// GenerateItinerary validates req, asks the model for a plan and returns it with
// language, startDate, endDate and duration set from the request. Invalid input
// fails with a *ValidationError; every model-side failure wraps types.ErrGeneration.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.TripPlan, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.String("trip.style", string(req.Style)),
		attribute.String("trip.language", string(req.Language)),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "GenerateItinerary"))
	started := time.Now()

	req = Normalize(req)
	if err := Validate(req); err != nil {
		span.SetStatus(codes.Error, "invalid trip request")
		s.record(ctx, started, metrics.OutcomeInvalid)
		return nil, err
	}

	prompt, days, err := BuildPrompt(req)
	if err != nil {
		span.SetStatus(codes.Error, "prompt build failed")
		s.record(ctx, started, metrics.OutcomeInvalid)
		return nil, err
	}
	span.SetAttributes(attribute.Int("trip.days", days), attribute.Int("prompt.length", len(prompt)))
	l.DebugContext(ctx, "Requesting itinerary",
		slog.String("destination", req.Destination),
		slog.Int("days", days))

	text, err := s.aiClient.GenerateContent(ctx,
		[]*genai.Content{generativeAI.UserText(prompt)},
		GenerationConfig(s.temperature))
	if err != nil {
		return nil, s.fail(ctx, span, l, started, fmt.Errorf("%w: %w", types.ErrGeneration, err))
	}

	plan, err := ParsePlan(text)
	if err != nil {
		return nil, s.fail(ctx, span, l, started, err)
	}

	Stamp(plan, req, days)
	plan.Warnings = CheckCompliance(plan, req.Language, days)
	if n := len(plan.Warnings); n > 0 {
		l.InfoContext(ctx, "Generated plan breaks prompt rules", slog.Int("warnings", n))
		if s.metrics != nil {
			s.metrics.ItineraryWarningsTotal.Add(ctx, int64(n))
		}
	}

	span.SetAttributes(attribute.Int("plan.days", len(plan.Days)), attribute.Int("plan.warnings", len(plan.Warnings)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	s.record(ctx, started, metrics.OutcomeSuccess)
	l.InfoContext(ctx, "Itinerary generated",
		slog.String("destination", plan.Destination),
		slog.Int("days", len(plan.Days)),
		slog.Duration("took", time.Since(started)))
	return plan, nil
}

func (s *ServiceImpl) fail(ctx context.Context, span trace.Span, l *slog.Logger, started time.Time, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "itinerary generation failed")
	s.record(ctx, started, metrics.OutcomeError)
	l.ErrorContext(ctx, "Itinerary generation failed", slog.Any("error", err))
	return err
}

func (s *ServiceImpl) record(ctx context.Context, started time.Time, outcome attribute.KeyValue) {
	if s.metrics == nil {
		return
	}
	s.metrics.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(outcome))
	s.metrics.ItineraryDurationSeconds.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(outcome))
}

// ParsePlan decodes the model's JSON reply. An empty reply and malformed JSON
// both wrap types.ErrGeneration; a well-formed plan with no days is not an error.
func ParsePlan(text string) (*types.TripPlan, error) {
	cleaned := cleanJSONResponse(text)
	if cleaned == "" || cleaned == "null" {
		return nil, fmt.Errorf("%w: %w", types.ErrGeneration, ErrEmptyResponse)
	}
	var plan types.TripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", types.ErrGeneration, err)
	}
	return &plan, nil
}

// Stamp overwrites the fields the server owns, whatever the model put there.
func Stamp(plan *types.TripPlan, req types.TripRequest, days int) {
	plan.Language = req.Language
	plan.StartDate = req.StartDate
	plan.EndDate = req.EndDate
	plan.Duration = strconv.Itoa(days)
}

// cleanJSONResponse strips markdown code fences the model sometimes wraps JSON in.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
