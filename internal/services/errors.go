package services

import (
	"errors"

	"github.com/baharkarakas/estate-api/internal/access"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = access.ErrForbidden
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
