package billing

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

func (s *Service) List(ctx context.Context) ([]*Billing, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Billing, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Get(ctx context.Context, billingID string) (*Billing, error) {
	return s.repo.GetByBillingID(ctx, billingID)
}

func (s *Service) Create(ctx context.Context, b *Billing) error {
	if b.PatientID == "" {
		return fmt.Errorf("patientId is required")
	}
	if b.Date == "" {
		return fmt.Errorf("date is required")
	}
	if b.Description == "" {
		return fmt.Errorf("description is required")
	}
	if b.Amount == "" {
		return fmt.Errorf("amount is required")
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if !validStatuses[b.Status] {
		return fmt.Errorf("invalid status %q", b.Status)
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) Update(ctx context.Context, billingID string, patch Patch) (*Billing, error) {
	if patch.Status != nil && !validStatuses[*patch.Status] {
		return nil, fmt.Errorf("invalid status %q", *patch.Status)
	}
	return s.repo.Update(ctx, billingID, patch)
}

func (s *Service) Delete(ctx context.Context, billingID string) (bool, error) {
	return s.repo.Delete(ctx, billingID)
}
