package composer

import (
	"context"
	"fmt"
	"strings"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
	"jokebot/internal/infrastructure/prompts"
)

const (
	maxRetries        = 5
	writerTemperature = 0.9
)

var _ output.JokeSource = (*Composer)(nil)

// Composer writes fresh jokes with an LLM writer and runs every draft
// past the critic. Rejected drafts are rewritten with the critic's
// feedback; when the retry budget runs out the last draft ships anyway.
type Composer struct {
	llm     output.LLMPort
	critic  output.CriticPort
	prompts *prompts.Builder
	logger  output.LoggerPort
}

func New(
	llm output.LLMPort,
	critic output.CriticPort,
	builder *prompts.Builder,
	logger output.LoggerPort,
) *Composer {
	return &Composer{
		llm:     llm,
		critic:  critic,
		prompts: builder,
		logger:  logger,
	}
}

func (c *Composer) Name() entity.SourceName {
	return entity.SourceOpenAI
}

func (c *Composer) Description() string {
	return "writes fresh jokes with an LLM writer/critic loop"
}

func (c *Composer) Fetch(ctx context.Context, category entity.Category, language entity.Language) (*entity.Joke, error) {
	c.logger.Info("Composing joke",
		"category", category.String(),
		"language", language.String(),
	)

	feedback := "none yet"
	var draft string

	for attempt := 1; attempt <= maxRetries; attempt++ {
		prompt, err := c.prompts.Get(prompts.WriterPrompt, map[string]any{
			"category": writerCategory(category),
			"language": languageName(language),
			"feedback": feedback,
		})
		if err != nil {
			return nil, fmt.Errorf("build writer prompt: %w", err)
		}

		resp, err := c.llm.Chat(ctx, output.ChatRequest{
			Messages: []entity.Message{
				{Role: entity.RoleSystem, Content: prompt},
			},
			Temperature: writerTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("writer llm request failed: %w", err)
		}

		draft = strings.TrimSpace(resp.Message.Content)
		if draft == "" {
			return nil, fmt.Errorf("writer returned an empty joke")
		}

		verdict, err := c.critic.Review(ctx, entity.Critique{
			JokeText: draft,
			Category: category,
			Attempt:  attempt,
		})
		if err != nil {
			return nil, fmt.Errorf("critic review failed: %w", err)
		}

		if verdict.Approved {
			c.logger.Info("Joke approved",
				"attempt", attempt,
				"category", category.String(),
			)
			return &entity.Joke{
				Text:     draft,
				Category: category,
				Language: language,
			}, nil
		}

		feedback = verdict.Feedback
		if feedback == "" {
			feedback = "the previous joke was rejected, try a different angle"
		}
		c.logger.Debug("Joke rejected, rewriting",
			"attempt", attempt,
			"feedback", feedback,
		)
	}

	// Retry budget exhausted. The last draft ships anyway so the user
	// always gets a joke.
	c.logger.Warn("Critic never approved, delivering last draft",
		"retries", maxRetries,
	)
	return &entity.Joke{
		Text:     draft,
		Category: category,
		Language: language,
	}, nil
}

// writerCategory maps category identifiers to wording that reads
// naturally inside the writer prompt.
func writerCategory(category entity.Category) string {
	switch category {
	case entity.CategoryChuck:
		return "Chuck Norris"
	case entity.CategoryAll:
		return "freestyle"
	default:
		return category.String()
	}
}

func languageName(language entity.Language) string {
	switch language {
	case entity.LanguageEnglish:
		return "English"
	case entity.LanguageGerman:
		return "German"
	case entity.LanguageSpanish:
		return "Spanish"
	default:
		return language.String()
	}
}
