package input

import (
	"context"

	"jokebot/internal/domain/entity"
)

type SessionRunner interface {
	Run(ctx context.Context) (*entity.SessionSummary, error)
}
