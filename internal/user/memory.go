package user

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository хранит пользователей в памяти. Идентификаторы растут
// монотонно в течение жизни процесса.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[int]User
	order []int
	next  int
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[int]User),
		next:  1,
		now:   time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, in CreateInput) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == in.Username {
			return nil, ErrUsernameExists
		}
	}

	now := r.now()
	u := User{
		ID:               r.next,
		UserType:         in.UserType,
		Username:         in.Username,
		OrganizationName: in.OrganizationName,
		FullName:         in.FullName,
		Phone:            in.Phone,
		LastAccess:       &now,
		Comments:         in.Comments,
	}
	r.next++
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)

	return &u, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]User, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.users[id])
	}
	return result, nil
}

func (r *MemoryRepository) RefreshAccess(_ context.Context, id int) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := r.now()
	u.LastAccess = &now
	r.users[id] = u
	return &u, nil
}

// Load вставляет готовую запись как есть, минуя Create. Используется
// загрузчиком демо-данных, чтобы проставить исторические lastAccess.
func (r *MemoryRepository) Load(u User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID >= r.next {
		r.next = u.ID + 1
	}
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)
}
