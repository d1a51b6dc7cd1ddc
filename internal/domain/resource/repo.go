package resource

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resource not found")

type Repository interface {
	List(ctx context.Context) ([]*Resource, error)
	GetByID(ctx context.Context, id int) (*Resource, error)
	// GetByName returns the first resource with the given name in
	// insertion order. Names are not unique.
	GetByName(ctx context.Context, name string) (*Resource, error)
	Create(ctx context.Context, res *Resource) error
	Update(ctx context.Context, id int, patch Patch) (*Resource, error)
	Delete(ctx context.Context, id int) (bool, error)
}
