package medrecord

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("medical record not found")
	ErrRecordIDTaken = errors.New("record id already taken")
)

type Repository interface {
	List(ctx context.Context) ([]*Record, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Record, error)
	GetByID(ctx context.Context, id int) (*Record, error)
	GetByRecordID(ctx context.Context, recordID string) (*Record, error)
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, recordID string, patch Patch) (*Record, error)
	Delete(ctx context.Context, recordID string) (bool, error)
}
