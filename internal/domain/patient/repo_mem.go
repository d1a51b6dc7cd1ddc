package patient

import (
	"context"
	"sync"
	"time"

	"github.com/medicore/hms/internal/platform/ident"
)

// memRepo is the in-memory patient store. Records are held by value so
// callers never share mutable state with the store; a single RWMutex keeps
// writes last-write-wins with no partial write observable.
type memRepo struct {
	mu     sync.RWMutex
	items  map[int]Patient
	order  []int          // insertion order of internal ids
	byKey  map[string]int // patientId -> internal id
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		items:  make(map[int]Patient),
		byKey:  make(map[string]int),
		nextID: 1,
	}
}

func (r *memRepo) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Patient, 0, len(r.order))
	for _, id := range r.order {
		p := r.items[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memRepo) GetByPatientID(_ context.Context, patientID string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	p := r.items[id]
	return &p, nil
}

func (r *memRepo) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.PatientID == "" {
		p.PatientID = ident.Unique(IDPrefix, func(k string) bool {
			_, taken := r.byKey[k]
			return taken
		})
	} else if _, taken := r.byKey[p.PatientID]; taken {
		return ErrPatientIDTaken
	}
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()

	r.items[p.ID] = *p
	r.order = append(r.order, p.ID)
	r.byKey[p.PatientID] = p.ID
	return nil
}

func (r *memRepo) Update(_ context.Context, patientID string, patch Patch) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	p := r.items[id]
	patch.apply(&p)
	r.items[id] = p
	return &p, nil
}

func (r *memRepo) Delete(_ context.Context, patientID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[patientID]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	delete(r.byKey, patientID)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
