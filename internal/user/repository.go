package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
)

// Repository — хранилище пользователей. Список возвращается в порядке
// вставки, без неявной сортировки. Удаления пользователей нет: записи
// сохраняются для истории.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	RefreshAccess(ctx context.Context, id int) (*User, error)
}
