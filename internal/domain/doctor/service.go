package doctor

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

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, doctorID string) (*Doctor, error) {
	return s.repo.GetByDoctorID(ctx, doctorID)
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.Specialization == "" {
		return fmt.Errorf("specialization is required")
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Update(ctx context.Context, doctorID string, patch Patch) (*Doctor, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if patch.Specialization != nil && *patch.Specialization == "" {
		return nil, fmt.Errorf("specialization cannot be empty")
	}
	return s.repo.Update(ctx, doctorID, patch)
}

func (s *Service) Delete(ctx context.Context, doctorID string) (bool, error) {
	return s.repo.Delete(ctx, doctorID)
}
