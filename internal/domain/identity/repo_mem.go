package identity

import (
	"context"
	"sync"
)

type memRepo struct {
	mu         sync.RWMutex
	items      map[int]User
	byUsername map[string]int
	nextID     int
}

func NewMemRepo() Repository {
	return &memRepo{
		items:      make(map[int]User),
		byUsername: make(map[string]int),
		nextID:     1,
	}
}

func (r *memRepo) GetByID(_ context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.items[id]
	return &u, nil
}

func (r *memRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[u.Username]; taken {
		return ErrUsernameTaken
	}
	u.ID = r.nextID
	r.nextID++

	r.items[u.ID] = *u
	r.byUsername[u.Username] = u.ID
	return nil
}
