package resource

import (
	"context"
	"sync"
	"time"
)

type memRepo struct {
	mu     sync.RWMutex
	items  map[int]Resource
	order  []int
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		items:  make(map[int]Resource),
		nextID: 1,
	}
}

func (r *memRepo) List(_ context.Context) ([]*Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Resource, 0, len(r.order))
	for _, id := range r.order {
		res := r.items[id]
		out = append(out, &res)
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *memRepo) GetByName(_ context.Context, name string) (*Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if res := r.items[id]; res.ResourceName == name {
			return &res, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) Create(_ context.Context, res *Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res.ID = r.nextID
	r.nextID++
	res.LastUpdated = time.Now()

	r.items[res.ID] = *res
	r.order = append(r.order, res.ID)
	return nil
}

func (r *memRepo) Update(_ context.Context, id int, patch Patch) (*Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.apply(&res)
	res.LastUpdated = time.Now()
	r.items[id] = res
	return &res, nil
}

func (r *memRepo) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
