package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/estate-api/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type Users interface {
	// Create fails with ErrDuplicate when the email is taken.
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type Properties interface {
	Create(ctx context.Context, p models.Property) (models.Property, error)
	// GetByID and List attach the owner summary.
	GetByID(ctx context.Context, id string) (models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	// Update writes title, description, price and location. Owner is never written.
	Update(ctx context.Context, p models.Property) (models.Property, error)
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}

type Repositories struct {
	Users      Users
	Properties Properties
	AuditLogs  AuditLogs
}
