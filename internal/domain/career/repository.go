package career

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("career not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Career, error)

	// Ensure persists c when no career with the same title exists and
	// returns the stored row either way. Concurrent callers converge on
	// one record.
	Ensure(ctx context.Context, c Career) (Career, error)

	List(ctx context.Context) ([]Career, error)
}
