package medrecord

import (
	"context"
	"sync"
	"time"

	"github.com/medicore/hms/internal/platform/ident"
)

type memRepo struct {
	mu     sync.RWMutex
	items  map[int]Record
	order  []int
	byKey  map[string]int // recordId -> internal id
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		items:  make(map[int]Record),
		byKey:  make(map[string]int),
		nextID: 1,
	}
}

func (r *memRepo) List(_ context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Record, 0, len(r.order))
	for _, id := range r.order {
		rec := r.items[id]
		out = append(out, &rec)
	}
	return out, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID string) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Record
	for _, id := range r.order {
		rec := r.items[id]
		if rec.PatientID == patientID {
			out = append(out, &rec)
		}
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (r *memRepo) GetByRecordID(_ context.Context, recordID string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[recordID]
	if !ok {
		return nil, ErrNotFound
	}
	rec := r.items[id]
	return &rec, nil
}

func (r *memRepo) Create(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.RecordID == "" {
		rec.RecordID = ident.Unique(IDPrefix, func(k string) bool {
			_, taken := r.byKey[k]
			return taken
		})
	} else if _, taken := r.byKey[rec.RecordID]; taken {
		return ErrRecordIDTaken
	}
	rec.ID = r.nextID
	r.nextID++
	rec.CreatedAt = time.Now()

	r.items[rec.ID] = *rec
	r.order = append(r.order, rec.ID)
	r.byKey[rec.RecordID] = rec.ID
	return nil
}

func (r *memRepo) Update(_ context.Context, recordID string, patch Patch) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[recordID]
	if !ok {
		return nil, ErrNotFound
	}
	rec := r.items[id]
	patch.apply(&rec)
	r.items[id] = rec
	return &rec, nil
}

func (r *memRepo) Delete(_ context.Context, recordID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[recordID]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	delete(r.byKey, recordID)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
