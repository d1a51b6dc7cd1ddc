package billing

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("billing not found")
	ErrBillingIDTaken = errors.New("billing id already taken")
)

type Repository interface {
	List(ctx context.Context) ([]*Billing, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Billing, error)
	GetByID(ctx context.Context, id int) (*Billing, error)
	GetByBillingID(ctx context.Context, billingID string) (*Billing, error)
	Create(ctx context.Context, b *Billing) error
	Update(ctx context.Context, billingID string, patch Patch) (*Billing, error)
	Delete(ctx context.Context, billingID string) (bool, error)
}
