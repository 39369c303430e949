package request

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("request not found")

// Repository — хранилище обращений. Список возвращается в порядке вставки.
// Удаления обращений нет: история переписки сохраняется.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*Request, error)
	GetByID(ctx context.Context, id int) (*Request, error)
	List(ctx context.Context) ([]Request, error)
	Update(ctx context.Context, id int, patch Patch) (*Request, error)
}
