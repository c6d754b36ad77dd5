package todo

import (
	"context"

	"github.com/idilsaglam/webtutorials/internal/model"
)

// Repository persists todos. Get, Update and Delete return ErrNotFound
// when no row has the given tid.
type Repository interface {
	Create(ctx context.Context, task string) (model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, tid int64) (model.Todo, error)
	Update(ctx context.Context, t model.Todo) (model.Todo, error)
	Delete(ctx context.Context, tid int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Close() error
}
