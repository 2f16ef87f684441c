package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/baharkarakas/estate-api/internal/access"
	"github.com/baharkarakas/estate-api/internal/api/validate"
	"github.com/baharkarakas/estate-api/internal/metrics"
	"github.com/baharkarakas/estate-api/internal/models"
	repo "github.com/baharkarakas/estate-api/internal/repository"
	"github.com/baharkarakas/estate-api/internal/worker"
)

type CreatePropertyInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Location    string   `json:"location" validate:"required"`
}

type PropertyService struct {
	r   repo.Properties
	log repo.AuditLogs
	wp  *worker.Pool
}

func NewPropertyService(r repo.Properties, l repo.AuditLogs, wp *worker.Pool) *PropertyService {
	return &PropertyService{r: r, log: l, wp: wp}
}

// ----------------- Helpers -----------------

func (s *PropertyService) audit(propertyID string, action models.AuditAction, actorID string, details map[string]any) {
	metrics.PropertyMutations.WithLabelValues(string(action)).Inc()
	if s.log == nil || s.wp == nil {
		return
	}
	entry := models.AuditLog{
		EntityType: "property",
		EntityID:   propertyID,
		Action:     action,
		ActorID:    actorID,
		Details:    details,
	}
	s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.log.Create(ctx, entry); err != nil {
			slog.Error("audit write", "property_id", propertyID, "action", action, "err", err)
		}
	})
}

func (s *PropertyService) deny(op access.Operation, id access.Identity, propertyID string) error {
	metrics.AccessDenied.WithLabelValues(string(op)).Inc()
	slog.Warn("access denied", "op", op, "user_id", id.UserID, "role", id.Role, "property_id", propertyID)
	return ErrForbidden
}

// load fetches the property before any ownership decision.
func (s *PropertyService) load(ctx context.Context, id string) (models.Property, error) {
	p, err := s.r.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Property{}, ErrNotFound
	}
	if err != nil {
		return models.Property{}, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// ----------------- Commands -----------------

// Create stores a property owned by the caller. Ownership never comes from input.
func (s *PropertyService) Create(ctx context.Context, id access.Identity, in CreatePropertyInput) (models.Property, error) {
	if err := access.Authorize(id, access.OpCreate, nil); err != nil {
		return models.Property{}, s.deny(access.OpCreate, id, "")
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	if err := validate.Struct(in); err != nil {
		return models.Property{}, err
	}

	p, err := s.r.Create(ctx, models.Property{
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Price:       *in.Price,
		Location:    in.Location,
		OwnerID:     id.UserID,
	})
	if err != nil {
		return models.Property{}, fmt.Errorf("create property: %w", err)
	}
	s.audit(p.ID, models.AuditCreated, id.UserID, nil)
	return p, nil
}

// Update applies patch. NotFound is reported before the ownership gate runs.
func (s *PropertyService) Update(ctx context.Context, id access.Identity, propertyID string, patch models.PropertyPatch) (models.Property, error) {
	p, err := s.load(ctx, propertyID)
	if err != nil {
		return models.Property{}, err
	}
	if err := access.Authorize(id, access.OpUpdate, &p); err != nil {
		return models.Property{}, s.deny(access.OpUpdate, id, propertyID)
	}
	patch.Title = trimmed(patch.Title)
	patch.Description = trimmed(patch.Description)
	patch.Location = trimmed(patch.Location)
	if err := validate.Collect(
		validate.NotBlank("title", patch.Title),
		validate.NotBlank("location", patch.Location),
		validate.NonNegative("price", patch.Price),
	); err != nil {
		return models.Property{}, err
	}
	if patch.Empty() {
		return p, nil
	}

	patch.Apply(&p)
	updated, err := s.r.Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Property{}, ErrNotFound
	}
	if err != nil {
		return models.Property{}, fmt.Errorf("update property: %w", err)
	}
	// owner never changes on update; keep the summary loaded above
	updated.Owner = p.Owner
	s.audit(updated.ID, models.AuditUpdated, id.UserID, changedFields(patch))
	return updated, nil
}

func (s *PropertyService) Remove(ctx context.Context, id access.Identity, propertyID string) error {
	p, err := s.load(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := access.Authorize(id, access.OpDelete, &p); err != nil {
		return s.deny(access.OpDelete, id, propertyID)
	}
	if err := s.r.Delete(ctx, propertyID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete property: %w", err)
	}
	s.audit(propertyID, models.AuditDeleted, id.UserID, nil)
	return nil
}

// ----------------- Queries -----------------

func (s *PropertyService) Get(ctx context.Context, propertyID string) (models.Property, error) {
	return s.load(ctx, propertyID)
}

func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	if out == nil {
		out = []models.Property{}
	}
	return out, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func changedFields(p models.PropertyPatch) map[string]any {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.Price != nil {
		fields = append(fields, "price")
	}
	if p.Location != nil {
		fields = append(fields, "location")
	}
	return map[string]any{"fields": fields}
}
