// Package memory is a process-local store used for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/estate-api/internal/models"
	repo "github.com/baharkarakas/estate-api/internal/repository"
)

type Store struct {
	mu         sync.RWMutex
	users      map[string]models.User
	emails     map[string]string // email -> user id
	properties map[string]models.Property
	audit      []models.AuditLog
}

func New() *Store {
	return &Store{
		users:      map[string]models.User{},
		emails:     map[string]string{},
		properties: map[string]models.Property{},
	}
}

func NewRepositories(s *Store) repo.Repositories {
	return repo.Repositories{
		Users:      usersRepo{s},
		Properties: propertiesRepo{s},
		AuditLogs:  auditLogsRepo{s},
	}
}

// AuditLogs returns a copy of the recorded audit entries.
func (s *Store) AuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AuditLog(nil), s.audit...)
}

type usersRepo struct{ s *Store }

func (r usersRepo) Create(_ context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emails[u.Email]; taken {
		return models.User{}, repo.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	r.s.users[u.ID] = u
	r.s.emails[u.Email] = u.ID
	return u, nil
}

func (r usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.emails[email]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return r.s.users[id], nil
}

type propertiesRepo struct{ s *Store }

func (r propertiesRepo) Create(_ context.Context, p models.Property) (models.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	p.Owner = nil
	r.s.properties[p.ID] = p
	return p, nil
}

func (r propertiesRepo) GetByID(_ context.Context, id string) (models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.properties[id]
	if !ok {
		return models.Property{}, repo.ErrNotFound
	}
	return r.withOwner(p), nil
}

func (r propertiesRepo) List(_ context.Context) ([]models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Property, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		out = append(out, r.withOwner(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// withOwner expects the read lock to be held.
func (r propertiesRepo) withOwner(p models.Property) models.Property {
	if u, ok := r.s.users[p.OwnerID]; ok {
		p.Owner = u.Summary()
	}
	return p
}

func (r propertiesRepo) Update(_ context.Context, p models.Property) (models.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.properties[p.ID]
	if !ok {
		return models.Property{}, repo.ErrNotFound
	}
	cur.Title = p.Title
	cur.Description = p.Description
	cur.Price = p.Price
	cur.Location = p.Location
	cur.UpdatedAt = time.Now().UTC()
	r.s.properties[p.ID] = cur
	return cur, nil
}

func (r propertiesRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.properties[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.properties, id)
	return nil
}

type auditLogsRepo struct{ s *Store }

func (r auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.s.audit = append(r.s.audit, l)
	return nil
}
