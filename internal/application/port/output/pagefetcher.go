package output

import (
	"context"

	"jokebot/internal/domain/entity"
)

type PageFetcherPort interface {
	Navigate(ctx context.Context, url string) error

	GetElementText(ctx context.Context, selector string) (string, error)
	GetPageText(ctx context.Context) (string, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	CurrentURL() string
	Close()
}
