package patient

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

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, patientID string) (*Patient, error) {
	return s.repo.GetByPatientID(ctx, patientID)
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, patientID string, patch Patch) (*Patient, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	return s.repo.Update(ctx, patientID, patch)
}

func (s *Service) Delete(ctx context.Context, patientID string) (bool, error) {
	return s.repo.Delete(ctx, patientID)
}
