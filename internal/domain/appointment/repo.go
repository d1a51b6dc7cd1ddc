package appointment

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("appointment not found")
	ErrAppointmentIDTaken = errors.New("appointment id already taken")
)

// Repository stores appointments keyed by their business id (AP...). The
// filtered listings return records in insertion order, matching List.
type Repository interface {
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
	ListByDate(ctx context.Context, date string) ([]*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, appointmentID string, patch Patch) (*Appointment, error)
	Delete(ctx context.Context, appointmentID string) (bool, error)
}
