package generativeAI

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("gemini api key is not set")

// AIClient is a thin wrapper around one genai client bound to one model.
// The credential is passed in by the caller; nothing is read from the environment here.
type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(ctx context.Context, apiKey, model string) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	if apiKey == "" {
		span.RecordError(ErrMissingAPIKey)
		span.SetStatus(codes.Error, "API key not set")
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &AIClient{client: client, model: model}, nil
}

func (ai *AIClient) Model() string { return ai.model }

// GenerateContent sends the full conversation in one request and returns the text of
// the first candidate. An empty reply is returned as "" with no error; callers decide
// what an empty answer means for them.
func (ai *AIClient) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("contents.count", len(contents)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, contents, config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("generate content: %w", err)
	}

	responseText := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(responseText)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return responseText, nil
}

// UserText builds a single user turn.
func UserText(text string) *genai.Content {
	return &genai.Content{Role: "user", Parts: []*genai.Part{{Text: text}}}
}

// ModelText builds a single model turn.
func ModelText(text string) *genai.Content {
	return &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}
}

// Unavailable stands in for a client that could not be built. Every call fails
// with Err, so a missing credential surfaces per request instead of at startup.
type Unavailable struct {
	Err error
}

func (u Unavailable) GenerateContent(context.Context, []*genai.Content, *genai.GenerateContentConfig) (string, error) {
	return "", u.Err
}
