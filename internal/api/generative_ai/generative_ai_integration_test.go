//go:build integration

package generativeAI

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func newTestClient(t *testing.T) *AIClient {
	t.Helper()
	client, err := NewAIClient(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	require.NoError(t, err)
	return client
}

func TestNewAIClient_Integration(t *testing.T) {
	client := newTestClient(t)
	assert.NotNil(t, client.client)
	assert.NotEmpty(t, client.Model())
}

func TestAIClient_GenerateContent_Integration(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	t.Run("plain text prompt", func(t *testing.T) {
		response, err := client.GenerateContent(ctx,
			[]*genai.Content{UserText("What is the capital of Portugal? One word.")},
			&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.1)})
		require.NoError(t, err)
		assert.Contains(t, response, "Lisbon")
	})

	t.Run("conversation history is honoured", func(t *testing.T) {
		response, err := client.GenerateContent(ctx, []*genai.Content{
			UserText("My trip is to Kyoto. Remember it."),
			ModelText("Understood."),
			UserText("Which city is my trip to? Answer with the city name only."),
		}, nil)
		require.NoError(t, err)
		assert.Contains(t, strings.ToLower(response), "kyoto")
	})

	t.Run("json schema output", func(t *testing.T) {
		response, err := client.GenerateContent(ctx,
			[]*genai.Content{UserText("Name one attraction in Paris.")},
			&genai.GenerateContentConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{"name": {Type: genai.TypeString}},
					Required:   []string{"name"},
				},
			})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(response), "{"))
	})
}
