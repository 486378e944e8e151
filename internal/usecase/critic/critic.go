package critic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
	"jokebot/internal/infrastructure/prompts"
)

var _ output.CriticPort = (*Critic)(nil)

// Critic asks the LLM to judge a joke draft and turns the reply into a
// structured verdict. Replies may be JSON or the bare APPROVE/REJECT
// word protocol; anything unparseable counts as approval so a flaky
// critic never blocks delivery.
type Critic struct {
	llm     output.LLMPort
	prompts *prompts.Builder
	logger  output.LoggerPort
}

func New(llm output.LLMPort, builder *prompts.Builder, logger output.LoggerPort) *Critic {
	return &Critic{
		llm:     llm,
		prompts: builder,
		logger:  logger,
	}
}

func (c *Critic) Review(ctx context.Context, critique entity.Critique) (*entity.Verdict, error) {
	prompt, err := c.prompts.Get(prompts.CriticPrompt, map[string]any{
		"category": critique.Category.String(),
		"joke":     critique.JokeText,
	})
	if err != nil {
		return nil, fmt.Errorf("build critic prompt: %w", err)
	}

	resp, err := c.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: prompt},
		},
		Temperature: 0.0,
	})
	if err != nil {
		return nil, fmt.Errorf("critic llm request failed: %w", err)
	}

	verdict, err := c.parseVerdict(resp.Message.Content)
	if err != nil {
		c.logger.Warn("Failed to parse critic response, assuming approval", "error", err)
		return &entity.Verdict{
			Approved:   true,
			Confidence: 0.5,
			Issues:     []string{},
			Feedback:   "",
			Retry:      false,
		}, nil
	}

	c.logger.Info("Critique completed",
		"attempt", critique.Attempt,
		"approved", verdict.Approved,
		"confidence", verdict.Confidence,
		"retry", verdict.Retry,
		"issues_count", len(verdict.Issues),
	)

	return verdict, nil
}

func (c *Critic) parseVerdict(response string) (*entity.Verdict, error) {
	response = strings.TrimSpace(response)

	if verdict, err := parseJSONVerdict(response); err == nil {
		return verdict, nil
	}
	if verdict, ok := parseWordVerdict(response); ok {
		return verdict, nil
	}

	return nil, fmt.Errorf("no verdict found in response")
}

func parseJSONVerdict(response string) (*entity.Verdict, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var verdict entity.Verdict
	if err := json.Unmarshal([]byte(response[start:end+1]), &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &verdict, nil
}

// parseWordVerdict handles the APPROVE/REJECT fallback protocol. Text
// after REJECT is treated as feedback for the writer.
func parseWordVerdict(response string) (*entity.Verdict, bool) {
	upper := strings.ToUpper(response)
	switch {
	case strings.HasPrefix(upper, "APPROVE"):
		return &entity.Verdict{
			Approved:   true,
			Confidence: 1.0,
			Issues:     []string{},
		}, true
	case strings.HasPrefix(upper, "REJECT"):
		return &entity.Verdict{
			Approved:   false,
			Confidence: 1.0,
			Issues:     []string{},
			Feedback:   strings.TrimSpace(response[len("REJECT"):]),
			Retry:      true,
		}, true
	}
	return nil, false
}
