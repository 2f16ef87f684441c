// Package access decides whether an identity may mutate a property.
//
// The check runs in two stages. The role gate asks whether the identity's
// role may attempt the operation at all; the ownership gate asks whether the
// identity owns the specific property. Callers must load the property before
// the ownership gate, so a missing property is reported as not found before
// any ownership decision is made.
package access

import (
	"errors"

	"github.com/baharkarakas/estate-api/internal/models"
)

var ErrForbidden = errors.New("not authorized")

type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Identity is the authenticated caller resolved from a token.
type Identity struct {
	UserID string
	Role   models.Role
}

func (i Identity) Authenticated() bool { return i.UserID != "" }

// RoleAllows is the role gate.
func RoleAllows(role models.Role, op Operation) bool {
	switch op {
	case OpRead:
		return true
	case OpCreate, OpUpdate, OpDelete:
		return role == models.RoleSeller
	}
	return false
}

// CanMutate is the ownership gate.
func CanMutate(p models.Property, requesterID string) bool {
	return requesterID != "" && p.OwnerID == requesterID
}

// Authorize runs the role gate, then the ownership gate when a property is given.
func Authorize(id Identity, op Operation, p *models.Property) error {
	if op != OpRead && !id.Authenticated() {
		return ErrForbidden
	}
	if !RoleAllows(id.Role, op) {
		return ErrForbidden
	}
	if p != nil && op != OpRead && !CanMutate(*p, id.UserID) {
		return ErrForbidden
	}
	return nil
}
