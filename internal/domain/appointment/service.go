package appointment

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]*Appointment, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *Service) Get(ctx context.Context, appointmentID string) (*Appointment, error) {
	return s.repo.GetByAppointmentID(ctx, appointmentID)
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == "" {
		return fmt.Errorf("patientId is required")
	}
	if a.DoctorID == "" {
		return fmt.Errorf("doctorId is required")
	}
	if a.Date == "" {
		return fmt.Errorf("date is required")
	}
	if a.Time == "" {
		return fmt.Errorf("time is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status %q", a.Status)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, appointmentID string, patch Patch) (*Appointment, error) {
	if patch.Status != nil && !validStatuses[*patch.Status] {
		return nil, fmt.Errorf("invalid status %q", *patch.Status)
	}
	return s.repo.Update(ctx, appointmentID, patch)
}

func (s *Service) Delete(ctx context.Context, appointmentID string) (bool, error) {
	return s.repo.Delete(ctx, appointmentID)
}
