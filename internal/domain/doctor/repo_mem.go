package doctor

import (
	"context"
	"sync"
	"time"

	"github.com/medicore/hms/internal/platform/ident"
)

type memRepo struct {
	mu     sync.RWMutex
	items  map[int]Doctor
	order  []int
	byKey  map[string]int // doctorId -> internal id
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		items:  make(map[int]Doctor),
		byKey:  make(map[string]int),
		nextID: 1,
	}
}

func (r *memRepo) List(_ context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Doctor, 0, len(r.order))
	for _, id := range r.order {
		d := r.items[id]
		out = append(out, &d)
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *memRepo) GetByDoctorID(_ context.Context, doctorID string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[doctorID]
	if !ok {
		return nil, ErrNotFound
	}
	d := r.items[id]
	return &d, nil
}

func (r *memRepo) Create(_ context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.DoctorID == "" {
		d.DoctorID = ident.Unique(IDPrefix, func(k string) bool {
			_, taken := r.byKey[k]
			return taken
		})
	} else if _, taken := r.byKey[d.DoctorID]; taken {
		return ErrDoctorIDTaken
	}
	d.ID = r.nextID
	r.nextID++
	d.CreatedAt = time.Now()

	r.items[d.ID] = *d
	r.order = append(r.order, d.ID)
	r.byKey[d.DoctorID] = d.ID
	return nil
}

func (r *memRepo) Update(_ context.Context, doctorID string, patch Patch) (*Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[doctorID]
	if !ok {
		return nil, ErrNotFound
	}
	d := r.items[id]
	patch.apply(&d)
	r.items[id] = d
	return &d, nil
}

func (r *memRepo) Delete(_ context.Context, doctorID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[doctorID]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	delete(r.byKey, doctorID)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
