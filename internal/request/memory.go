package request

import (
	"context"
	"sync"
	"time"

	"github.com/dealflow-platform/admin-api/internal/types"
)

// MemoryRepository хранит обращения в памяти.
type MemoryRepository struct {
	mu       sync.RWMutex
	requests map[int]Request
	order    []int
	next     int
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		requests: make(map[int]Request),
		next:     1,
		now:      time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, in CreateInput) (*Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := Request{
		ID:               r.next,
		UserType:         in.UserType,
		Topic:            in.Topic,
		CreatedAt:        r.now(),
		Status:           types.RequestStatusNew,
		FullName:         in.FullName,
		OrganizationName: in.OrganizationName,
		CNum:             in.CNum,
		Login:            in.Login,
		Phone:            in.Phone,
		Comments:         in.Comments,
	}
	r.next++
	r.requests[req.ID] = req
	r.order = append(r.order, req.ID)

	return &req, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &req, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Request, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.requests[id])
	}
	return result, nil
}

func (r *MemoryRepository) Update(_ context.Context, id int, patch Patch) (*Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.apply(&req)
	r.requests[id] = req
	return &req, nil
}

// Load вставляет готовую запись как есть, минуя Create.
func (r *MemoryRepository) Load(req Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID >= r.next {
		r.next = req.ID + 1
	}
	r.requests[req.ID] = req
	r.order = append(r.order, req.ID)
}
