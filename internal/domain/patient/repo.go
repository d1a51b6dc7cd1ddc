package patient

import (
	"context"
	"errors"
)

// ErrNotFound signals an absent patient. It is not an input error; handlers
// translate it to 404.
var ErrNotFound = errors.New("patient not found")

// ErrPatientIDTaken is returned by Create when a caller-supplied patientId
// already exists in the collection.
var ErrPatientIDTaken = errors.New("patient id already taken")

type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id int) (*Patient, error)
	GetByPatientID(ctx context.Context, patientID string) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, patientID string, patch Patch) (*Patient, error)
	Delete(ctx context.Context, patientID string) (bool, error)
}
