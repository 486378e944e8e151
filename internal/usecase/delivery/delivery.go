package delivery

import (
	"context"
	"errors"
	"fmt"

	"jokebot/internal/application/port/input"
	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
)

var _ input.JokeService = (*UseCase)(nil)

// UseCase hands out single jokes from whichever source the request
// names. The auto source resolves to openai when that source is
// registered and falls back to static otherwise.
type UseCase struct {
	sources output.SourceRegistry
	logger  output.LoggerPort
}

func New(sources output.SourceRegistry, logger output.LoggerPort) *UseCase {
	return &UseCase{
		sources: sources,
		logger:  logger,
	}
}

func (uc *UseCase) Tell(ctx context.Context, req input.JokeRequest) (*entity.Joke, error) {
	category := req.Category
	if category == "" {
		category = entity.CategoryNeutral
	}
	language := req.Language
	if language == "" {
		language = entity.LanguageEnglish
	}

	source, err := uc.resolve(req.Source)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Telling joke",
		"source", source.Name().String(),
		"category", category.String(),
		"language", language.String(),
	)

	joke, err := source.Fetch(ctx, category, language)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", source.Name(), err)
	}
	return joke, nil
}

func (uc *UseCase) Categories() []entity.Category {
	return entity.Categories()
}

func (uc *UseCase) Sources() []entity.SourceName {
	return uc.sources.Names()
}

func (uc *UseCase) resolve(name entity.SourceName) (output.JokeSource, error) {
	if name == "" {
		name = entity.SourceAuto
	}

	if name == entity.SourceAuto {
		if source, ok := uc.sources.Get(entity.SourceOpenAI); ok {
			return source, nil
		}
		if source, ok := uc.sources.Get(entity.SourceStatic); ok {
			return source, nil
		}
		return nil, errors.New("no joke sources registered")
	}

	source, ok := uc.sources.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", input.ErrUnknownSource, name, uc.sources.Names())
	}
	return source, nil
}
