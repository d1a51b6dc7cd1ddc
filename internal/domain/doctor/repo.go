package doctor

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("doctor not found")
	ErrDoctorIDTaken = errors.New("doctor id already taken")
)

type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id int) (*Doctor, error)
	GetByDoctorID(ctx context.Context, doctorID string) (*Doctor, error)
	Create(ctx context.Context, d *Doctor) error
	Update(ctx context.Context, doctorID string, patch Patch) (*Doctor, error)
	Delete(ctx context.Context, doctorID string) (bool, error)
}
