package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
)

const DefaultModel = "gpt-4o"

const (
	chatPrompt = "You are a supportive mental health assistant for the Healing Minds platform. Provide empathetic, " +
		"thoughtful responses that might help someone working through mental health challenges. " +
		"Do not diagnose medical conditions or prescribe treatments. If someone appears to be in crisis, " +
		"encourage them to seek professional help immediately through crisis resources or emergency services. " +
		"Keep responses concise (under 150 words) but warm and helpful."

	resourcePrompt = "You are a mental health resource specialist. Based on a user's mood and concerns, " +
		"suggest 3 specific therapeutic resources that might help them. " +
		"Respond with a JSON object with a 'resources' array containing objects with 'title', 'description', and 'resourceType' " +
		"(one of: 'Article', 'Exercise', 'Video', 'Book', 'Technique'). Keep descriptions under 100 characters."

	analysisPrompt = "You are a mood analysis specialist. Analyze the provided mood entries and identify patterns, " +
		"potential triggers, and provide helpful insights. Return a JSON object with three fields: " +
		"'summary' (a brief overview), 'insights' (array of observations about patterns), and " +
		"'suggestions' (array of constructive recommendations). Keep the summary under 100 words, " +
		"and limit to 3 insights and 3 suggestions."
)

var errEmptyCompletion = errors.New("empty response from OpenAI")

// OpenAI backs the Assistant with chat completions.
type OpenAI struct {
	client openai.Client
	model  string
}

type OpenAIOption func(*openAIConfig)

type openAIConfig struct {
	model   string
	baseURL string
}

func WithModel(model string) OpenAIOption {
	return func(c *openAIConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at a compatible endpoint other than api.openai.com.
func WithBaseURL(url string) OpenAIOption {
	return func(c *openAIConfig) { c.baseURL = url }
}

func NewOpenAI(apiKey string, opts ...OpenAIOption) *OpenAI {
	cfg := openAIConfig{model: DefaultModel}
	for _, opt := range opts {
		opt(&cfg)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &OpenAI{
		client: openai.NewClient(clientOpts...),
		model:  cfg.model,
	}
}

func (a *OpenAI) complete(ctx context.Context, system, user string, maxTokens int64, jsonMode bool) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens: openai.Int(maxTokens),
	}
	if jsonMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func (a *OpenAI) Respond(ctx context.Context, message string) string {
	reply, err := a.complete(ctx, chatPrompt, message, 300, false)
	if errors.Is(err, errEmptyCompletion) {
		return FallbackEmptyReply
	}
	if err != nil {
		logger.Error().Err(err).Msg("OpenAI API error")
		return FallbackReply
	}
	return reply
}

func (a *OpenAI) Recommend(ctx context.Context, mood, concerns string) []Resource {
	content, err := a.complete(ctx, resourcePrompt,
		fmt.Sprintf("My current mood is %s. I'm concerned about: %s", mood, concerns), 500, true)
	if err != nil {
		logger.Error().Err(err).Msg("OpenAI API error")
		return []Resource{}
	}

	var parsed struct {
		Resources []Resource `json:"resources"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		logger.Error().Err(err).Msg("Error decoding resource recommendations")
		return []Resource{}
	}
	if parsed.Resources == nil {
		return []Resource{}
	}
	return parsed.Resources
}

func (a *OpenAI) AnalyzeMood(ctx context.Context, entries []entity.MoodSample) MoodAnalysis {
	if entries == nil {
		entries = []entity.MoodSample{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		logger.Error().Err(err).Msg("Error encoding mood entries")
		return FallbackAnalysis()
	}

	content, err := a.complete(ctx, analysisPrompt, "Here are my mood entries: "+string(payload), 500, true)
	if err != nil {
		logger.Error().Err(err).Msg("OpenAI API error")
		return FallbackAnalysis()
	}

	var analysis MoodAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		logger.Error().Err(err).Msg("Error decoding mood analysis")
		return FallbackAnalysis()
	}
	return analysis
}
