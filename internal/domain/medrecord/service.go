package medrecord

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

func (s *Service) List(ctx context.Context) ([]*Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Record, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Get(ctx context.Context, recordID string) (*Record, error) {
	return s.repo.GetByRecordID(ctx, recordID)
}

func (s *Service) Create(ctx context.Context, rec *Record) error {
	if rec.PatientID == "" {
		return fmt.Errorf("patientId is required")
	}
	if rec.DoctorID == "" {
		return fmt.Errorf("doctorId is required")
	}
	if rec.Date == "" {
		return fmt.Errorf("date is required")
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service) Update(ctx context.Context, recordID string, patch Patch) (*Record, error) {
	return s.repo.Update(ctx, recordID, patch)
}

func (s *Service) Delete(ctx context.Context, recordID string) (bool, error) {
	return s.repo.Delete(ctx, recordID)
}
