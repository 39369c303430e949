package project

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository хранит проекты в памяти.
type MemoryRepository struct {
	mu       sync.RWMutex
	projects map[int]Project
	order    []int
	next     int
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		projects: make(map[int]Project),
		next:     1,
		now:      time.Now,
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (r *MemoryRepository) Create(_ context.Context, in CreateInput) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Project{
		ID:          r.next,
		Name:        in.Name,
		DealType:    in.DealType,
		Industry:    in.Industry,
		CreatedAt:   r.now(),
		IsVisible:   boolOrDefault(in.IsVisible, true),
		IsCompleted: boolOrDefault(in.IsCompleted, false),

		ContactName1:     in.ContactName1,
		ContactPhone1:    in.ContactPhone1,
		ContactPosition1: in.ContactPosition1,
		ContactPhone2:    in.ContactPhone2,
		INN:              in.INN,
		Location:         in.Location,
		Revenue:          in.Revenue,
		EBITDA:           in.EBITDA,
		Price:            in.Price,
		SalePercent:      in.SalePercent,
		Website:          in.Website,
		HideUntilNDA:     boolOrDefault(in.HideUntilNDA, false),
		Comments:         in.Comments,
	}
	r.next++
	r.projects[p.ID] = p
	r.order = append(r.order, p.ID)

	return &p, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int) (*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Project, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.projects[id])
	}
	return result, nil
}

func (r *MemoryRepository) Update(_ context.Context, id int, patch Patch) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.apply(&p)
	r.projects[id] = p
	return &p, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return ErrNotFound
	}
	delete(r.projects, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Load вставляет готовую запись как есть, минуя Create. Используется
// загрузчиком демо-данных, чтобы разнести createdAt по датам.
func (r *MemoryRepository) Load(p Project) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID >= r.next {
		r.next = p.ID + 1
	}
	r.projects[p.ID] = p
	r.order = append(r.order, p.ID)
}
