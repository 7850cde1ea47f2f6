package llmChat

import (
	"context"
	"fmt"
	"log/slog"
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

const (
	// FallbackReply is returned whenever the model call fails.
	FallbackReply = "Sorry, I can't answer that right now."
	// EmptyReply is returned when the model answers with no text.
	EmptyReply = "I'm having trouble connecting right now."

	contextAck = "Understood. I am ready to help with the itinerary."
)

// ContentGenerator is the slice of the genai client the chat needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Chat(ctx context.Context, plan *types.TripPlan, history []types.ChatMessage, message string, lang types.Language) string
}

type ServiceImpl struct {
	logger   *slog.Logger
	aiClient ContentGenerator
	metrics  *metrics.AppMetrics
}

func NewServiceImpl(logger *slog.Logger, aiClient ContentGenerator, m *metrics.AppMetrics) *ServiceImpl {
	return &ServiceImpl{logger: logger, aiClient: aiClient, metrics: m}
}

// ContextBlock describes the current trip to the model.
func ContextBlock(plan *types.TripPlan, lang types.Language) string {
	userLang := "Traditional Chinese (繁體中文)"
	if lang.IsEnglish() {
		userLang = "English"
	}
	return fmt.Sprintf(`
    You are a helpful Travel Assistant specialized in the user's current trip to %[1]s.
    User Language: %[2]s.

    Current Itinerary Context:
    - Destination: %[1]s
    - Dates: %[3]s to %[4]s
    - Style: %[5]s
    - Transport: %[6]s
    - Accommodation Options: %[7]s

    The user wants to adjust their plan or ask questions about it.
    Answer concisely.
`, plan.Destination, userLang, plan.StartDate, plan.EndDate, plan.Style, plan.TransportMode,
		strings.Join(plan.AccommodationNames(), ", "))
}

// BuildContents lays out one chat request: the context block and its
// acknowledgement, the prior transcript in order, then the new message.
func BuildContents(plan *types.TripPlan, history []types.ChatMessage, message string, lang types.Language) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+3)
	contents = append(contents,
		generativeAI.UserText(ContextBlock(plan, lang)),
		generativeAI.ModelText(contextAck),
	)
	for _, msg := range history {
		if msg.Role == types.ChatRoleModel {
			contents = append(contents, generativeAI.ModelText(msg.Text))
			continue
		}
		contents = append(contents, generativeAI.UserText(msg.Text))
	}
	return append(contents, generativeAI.UserText(message))
}

// Chat answers one message about plan. It never fails: model errors yield
// FallbackReply and an empty answer yields EmptyReply. plan and history are
// only read.
func (s *ServiceImpl) Chat(ctx context.Context, plan *types.TripPlan, history []types.ChatMessage, message string, lang types.Language) string {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "Chat", trace.WithAttributes(
		attribute.Int("chat.history", len(history)),
		attribute.Int("chat.message.length", len(message)),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "Chat"))
	started := time.Now()

	if plan == nil {
		span.SetStatus(codes.Error, "no plan")
		l.WarnContext(ctx, "Chat called without a plan")
		s.record(ctx, started, metrics.OutcomeFallback)
		return FallbackReply
	}
	span.SetAttributes(attribute.String("trip.destination", plan.Destination))

	text, err := s.aiClient.GenerateContent(ctx, BuildContents(plan, history, message, lang), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "chat generation failed")
		l.ErrorContext(ctx, "Chat generation failed", slog.Any("error", err))
		s.record(ctx, started, metrics.OutcomeFallback)
		return FallbackReply
	}
	if strings.TrimSpace(text) == "" {
		l.WarnContext(ctx, "Chat reply was empty")
		s.record(ctx, started, metrics.OutcomeFallback)
		return EmptyReply
	}

	span.SetStatus(codes.Ok, "Chat answered")
	s.record(ctx, started, metrics.OutcomeSuccess)
	return text
}

func (s *ServiceImpl) record(ctx context.Context, started time.Time, outcome attribute.KeyValue) {
	if s.metrics == nil {
		return
	}
	s.metrics.ChatRequestsTotal.Add(ctx, 1, metric.WithAttributes(outcome))
	s.metrics.ChatDurationSeconds.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(outcome))
}
