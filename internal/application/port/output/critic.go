package output

import (
	"context"

	"jokebot/internal/domain/entity"
)

// CriticPort reviews a joke draft and returns a verdict for the writer.
type CriticPort interface {
	Review(ctx context.Context, critique entity.Critique) (*entity.Verdict, error)
}
