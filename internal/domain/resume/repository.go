package resume

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("resume not found")

	// ErrConflict reports that a concurrent writer created the same id
	// first; the primary key turns the create/create race into an error
	// instead of a duplicate.
	ErrConflict = errors.New("resume already exists")
)

type Repository interface {
	GetByID(ctx context.Context, id string) (Resume, error)
	Create(ctx context.Context, r Resume) error
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, id string) error
}
