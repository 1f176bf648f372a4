package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/set-night/mindfulchat/internal/config"
	"github.com/set-night/mindfulchat/internal/domain"
)

// GroqService talks to Groq's OpenAI-compatible completion endpoint.
type GroqService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	cache   *ModelsCache
}

func NewGroqService(apiKey, baseURL, model string, timeout time.Duration) *GroqService {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &GroqService{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
		cache:   NewModelsCache(config.ModelCacheDuration),
	}
}

// Complete sends one chat completion request with the fixed generation
// parameters. A single attempt per invocation; retrying is the caller's
// business. Remote rejections map to *domain.APIError, transport failure and
// timeout to domain.ErrNetwork.
func (s *GroqService) Complete(ctx context.Context, messages []domain.Message) (string, domain.TokenUsage, error) {
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    toChatMessages(messages),
		MaxTokens:   config.MaxTokens,
		Temperature: config.Temperature,
		TopP:        config.TopP,
	}

	resp, err := s.client.CreateChatCompletion(reqCtx, req)
	if err != nil {
		return "", domain.TokenUsage{}, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.TokenUsage{}, domain.ErrEmptyCompletion
	}

	usage := domain.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}
	return resp.Choices[0].Message.Content, usage, nil
}

// ListModels returns the ids of the models the endpoint offers, cached for
// ModelCacheDuration.
func (s *GroqService) ListModels(ctx context.Context) ([]string, error) {
	if cached := s.cache.Get(); cached != nil {
		return cached, nil
	}

	resp, err := s.client.ListModels(ctx)
	if err != nil {
		return nil, classifyError(err)
	}

	ids := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)

	s.cache.Set(ids)
	return ids, nil
}

func toChatMessages(messages []domain.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &domain.APIError{Status: apiErr.HTTPStatusCode}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &domain.APIError{Status: reqErr.HTTPStatusCode}
	}
	return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
}
