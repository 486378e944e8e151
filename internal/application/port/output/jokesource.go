package output

import (
	"context"

	"jokebot/internal/domain/entity"
)

type JokeSource interface {
	Name() entity.SourceName
	Description() string
	Fetch(ctx context.Context, category entity.Category, language entity.Language) (*entity.Joke, error)
}

type SourceRegistry interface {
	Register(source JokeSource)
	Get(name entity.SourceName) (JokeSource, bool)
	All() []JokeSource
	Names() []entity.SourceName
}
