package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/resource-server/internal/model"
)

// MemoryUserStore is an in-memory model.UserStore with a unique email index.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]model.User)}
}

var _ model.UserStore = (*MemoryUserStore)(nil)

func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *MemoryUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.User{}, model.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return user, nil
}

// Len returns the number of stored users.
func (s *MemoryUserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// MemoryResourceStore is an in-memory model.ResourceStore.
type MemoryResourceStore struct {
	mu        sync.Mutex
	resources map[uuid.UUID]model.Resource
}

func NewMemoryResourceStore() *MemoryResourceStore {
	return &MemoryResourceStore{resources: make(map[uuid.UUID]model.Resource)}
}

var _ model.ResourceStore = (*MemoryResourceStore)(nil)

func (s *MemoryResourceStore) Create(_ context.Context, resource model.Resource) (model.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[resource.ID] = resource
	return resource, nil
}

func (s *MemoryResourceStore) GetByID(_ context.Context, id uuid.UUID) (model.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resources[id]
	if !ok {
		return model.Resource{}, model.ErrNotFound
	}
	return r, nil
}

func (s *MemoryResourceStore) GetByOwnerID(_ context.Context, ownerID uuid.UUID) ([]model.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Resource, 0)
	for _, r := range s.resources {
		if r.CreatedBy == ownerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryResourceStore) Update(_ context.Context, id uuid.UUID, patch model.ResourcePatch, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resources[id]
	if !ok {
		return model.ErrNotFound
	}
	r = patch.Apply(r)
	r.UpdatedAt = updatedAt
	s.resources[id] = r
	return nil
}

func (s *MemoryResourceStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.resources, id)
	return nil
}
