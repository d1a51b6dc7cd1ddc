package resource

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

func (s *Service) List(ctx context.Context) ([]*Resource, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (*Resource, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *Service) Create(ctx context.Context, res *Resource) error {
	if res.ResourceName == "" {
		return fmt.Errorf("resourceName is required")
	}
	if res.TotalCount < 0 || res.UsedCount < 0 {
		return fmt.Errorf("counts cannot be negative")
	}
	return s.repo.Create(ctx, res)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Resource, error) {
	if patch.TotalCount != nil && *patch.TotalCount < 0 {
		return nil, fmt.Errorf("totalCount cannot be negative")
	}
	if patch.UsedCount != nil && *patch.UsedCount < 0 {
		return nil, fmt.Errorf("usedCount cannot be negative")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}
