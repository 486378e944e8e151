package openaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
)

var _ output.LLMPort = (*OpenAIAdapter)(nil)

type OpenAIAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey: apiKey,
		Model:  model,
	}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.logger != nil {
		var bodyBytes []byte
		if req.Body != nil {
			bodyBytes, _ = io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		var requestData map[string]interface{}
		if len(bodyBytes) > 0 {
			json.Unmarshal(bodyBytes, &requestData)
		}

		t.logger.Info("HTTP Request",
			"method", req.Method,
			"url", req.URL.String(),
			"body", requestData,
		)
	}

	resp, err := t.base.RoundTrip(req)

	if t.logger != nil && resp != nil {
		t.logger.Info("HTTP Response",
			"status", resp.Status,
			"statusCode", resp.StatusCode,
		)
	}

	return resp, err
}

func NewOpenAIAdapter(cfg Config) *OpenAIAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	if cfg.Logger != nil {
		transport := &loggingTransport{
			base:   http.DefaultTransport,
			logger: cfg.Logger,
		}
		config.HTTPClient = &http.Client{
			Transport: transport,
		}
	}

	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

func (a *OpenAIAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	messages := convertMessages(req.Messages)

	if a.logger != nil {
		a.logger.Debug("Creating chat completion",
			"model", a.model,
			"messagesCount", len(messages),
			"temperature", req.Temperature)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := resp.Choices[0]
	return &output.ChatResponse{
		Message: convertResponseMessage(choice.Message),
	}, nil
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return result
}

func convertResponseMessage(msg openai.ChatCompletionMessage) entity.Message {
	return entity.Message{
		Role:    entity.MessageRole(msg.Role),
		Content: msg.Content,
	}
}
