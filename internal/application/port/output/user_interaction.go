package output

import (
	"context"

	"jokebot/internal/domain/entity"
)

type UserInteractionPort interface {
	AskChoice(ctx context.Context) (string, error)
	AskCategory(ctx context.Context, categories []entity.Category) (string, error)

	ShowWelcome(ctx context.Context)
	ShowMenu(ctx context.Context, category entity.Category, jokesHeard int)
	ShowJoke(ctx context.Context, joke entity.Joke)
	ShowMessage(ctx context.Context, message string)
	ShowGoodbye(ctx context.Context, summary entity.SessionSummary)
}
