package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/baharkarakas/estate-api/internal/api/validate"
	"github.com/baharkarakas/estate-api/internal/auth"
	"github.com/baharkarakas/estate-api/internal/metrics"
	"github.com/baharkarakas/estate-api/internal/models"
	repo "github.com/baharkarakas/estate-api/internal/repository"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Age      *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Address  string `json:"address"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Role     string `json:"role" validate:"omitempty,oneof=seller viewer buyer"`
}

type Session struct {
	AccessToken  string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"` // seconds
	User         models.User `json:"user"`
}

type UserService struct {
	r         repo.Users
	tm        *auth.TokenManager
	dummyHash string
}

func NewUserService(r repo.Users, tm *auth.TokenManager) *UserService {
	// compared against when the email is unknown so both failure paths cost a bcrypt round
	dummy, _ := auth.HashPassword("estate-api-dummy-password")
	return &UserService{r: r, tm: tm, dummyHash: dummy}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = models.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Role = strings.TrimSpace(in.Role)
	if err := validate.Struct(in); err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return models.User{}, err
	}

	role := models.Role(in.Role)
	if role == "" {
		role = models.RoleViewer
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.r.Create(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Age:          in.Age,
		Address:      strings.TrimSpace(in.Address),
		State:        strings.TrimSpace(in.State),
		Country:      strings.TrimSpace(in.Country),
		Role:         role,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		metrics.AuthAttempts.WithLabelValues("register", "duplicate").Inc()
		return models.User{}, ErrEmailTaken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	metrics.AuthAttempts.WithLabelValues("register", "ok").Inc()
	return u, nil
}

// Authenticate verifies credentials. Unknown email and wrong password yield the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.r.GetByEmail(ctx, models.NormalizeEmail(email))
	switch {
	case errors.Is(err, repo.ErrNotFound):
		_ = auth.VerifyPassword(password, s.dummyHash)
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "denied").Inc()
		return Session{}, err
	}
	metrics.AuthAttempts.WithLabelValues("login", "ok").Inc()
	return s.issue(u)
}

// Refresh trades a refresh token for a new pair. The user is re-read so role changes apply.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}
	u, err := s.r.GetByID(ctx, claims.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}
	return s.issue(u)
}

func (s *UserService) issue(u models.User) (Session, error) {
	pair, err := s.tm.GeneratePair(u.ID, string(u.Role))
	if err != nil {
		return Session{}, fmt.Errorf("sign tokens: %w", err)
	}
	return Session{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		ExpiresIn:    int64(time.Until(pair.AccessExp).Truncate(time.Second).Seconds()),
		User:         u,
	}, nil
}
