package project

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("project not found")

// Repository — хранилище проектов. Список возвращается в порядке вставки.
// Идентификаторы удаленных проектов повторно не выдаются.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*Project, error)
	GetByID(ctx context.Context, id int) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, id int, patch Patch) (*Project, error)
	Delete(ctx context.Context, id int) error
}
