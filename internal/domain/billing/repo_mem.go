package billing

import (
	"context"
	"sync"
	"time"

	"github.com/medicore/hms/internal/platform/ident"
)

type memRepo struct {
	mu     sync.RWMutex
	items  map[int]Billing
	order  []int
	byKey  map[string]int // billingId -> internal id
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		items:  make(map[int]Billing),
		byKey:  make(map[string]int),
		nextID: 1,
	}
}

func (r *memRepo) List(_ context.Context) ([]*Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Billing, 0, len(r.order))
	for _, id := range r.order {
		b := r.items[id]
		out = append(out, &b)
	}
	return out, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID string) ([]*Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Billing
	for _, id := range r.order {
		b := r.items[id]
		if b.PatientID == patientID {
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *memRepo) GetByBillingID(_ context.Context, billingID string) (*Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[billingID]
	if !ok {
		return nil, ErrNotFound
	}
	b := r.items[id]
	return &b, nil
}

func (r *memRepo) Create(_ context.Context, b *Billing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.BillingID == "" {
		b.BillingID = ident.Unique(IDPrefix, func(k string) bool {
			_, taken := r.byKey[k]
			return taken
		})
	} else if _, taken := r.byKey[b.BillingID]; taken {
		return ErrBillingIDTaken
	}
	b.ID = r.nextID
	r.nextID++
	b.CreatedAt = time.Now()

	r.items[b.ID] = *b
	r.order = append(r.order, b.ID)
	r.byKey[b.BillingID] = b.ID
	return nil
}

func (r *memRepo) Update(_ context.Context, billingID string, patch Patch) (*Billing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[billingID]
	if !ok {
		return nil, ErrNotFound
	}
	b := r.items[id]
	patch.apply(&b)
	r.items[id] = b
	return &b, nil
}

func (r *memRepo) Delete(_ context.Context, billingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[billingID]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	delete(r.byKey, billingID)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
