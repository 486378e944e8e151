package input

import (
	"context"
	"errors"

	"jokebot/internal/domain/entity"
)

// ErrUnknownSource is returned by Tell when the request names a source
// that is not registered.
var ErrUnknownSource = errors.New("unknown joke source")

// JokeService hands out single jokes outside of an interactive session,
// for the CLI one-shot command and the HTTP API.
type JokeService interface {
	Tell(ctx context.Context, req JokeRequest) (*entity.Joke, error)
	Categories() []entity.Category
	Sources() []entity.SourceName
}

type JokeRequest struct {
	Category entity.Category
	Language entity.Language
	Source   entity.SourceName
}
