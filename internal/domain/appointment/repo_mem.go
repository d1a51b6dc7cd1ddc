package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/medicore/hms/internal/platform/ident"
)

type memRepo struct {
	mu     sync.RWMutex
	items  map[int]Appointment
	order  []int
	byKey  map[string]int // appointmentId -> internal id
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		items:  make(map[int]Appointment),
		byKey:  make(map[string]int),
		nextID: 1,
	}
}

func (r *memRepo) List(_ context.Context) ([]*Appointment, error) {
	return r.filter(func(Appointment) bool { return true }), nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID string) ([]*Appointment, error) {
	return r.filter(func(a Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *memRepo) ListByDoctor(_ context.Context, doctorID string) ([]*Appointment, error) {
	return r.filter(func(a Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *memRepo) ListByDate(_ context.Context, date string) ([]*Appointment, error) {
	return r.filter(func(a Appointment) bool { return a.Date == date }), nil
}

func (r *memRepo) filter(keep func(Appointment) bool) []*Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, 0, len(r.order))
	for _, id := range r.order {
		a := r.items[id]
		if keep(a) {
			out = append(out, &a)
		}
	}
	return out
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *memRepo) GetByAppointmentID(_ context.Context, appointmentID string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[appointmentID]
	if !ok {
		return nil, ErrNotFound
	}
	a := r.items[id]
	return &a, nil
}

func (r *memRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.AppointmentID == "" {
		a.AppointmentID = ident.Unique(IDPrefix, func(k string) bool {
			_, taken := r.byKey[k]
			return taken
		})
	} else if _, taken := r.byKey[a.AppointmentID]; taken {
		return ErrAppointmentIDTaken
	}
	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Now()

	r.items[a.ID] = *a
	r.order = append(r.order, a.ID)
	r.byKey[a.AppointmentID] = a.ID
	return nil
}

func (r *memRepo) Update(_ context.Context, appointmentID string, patch Patch) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[appointmentID]
	if !ok {
		return nil, ErrNotFound
	}
	a := r.items[id]
	patch.apply(&a)
	r.items[id] = a
	return &a, nil
}

func (r *memRepo) Delete(_ context.Context, appointmentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[appointmentID]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	delete(r.byKey, appointmentID)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
