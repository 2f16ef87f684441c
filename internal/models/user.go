package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleSeller Role = "seller"
	RoleViewer Role = "viewer"
	RoleBuyer  Role = "buyer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSeller, RoleViewer, RoleBuyer:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	PasswordHash string    `json:"-" bson:"password"`
	Age          *int      `json:"age,omitempty" bson:"age,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	State        string    `json:"state,omitempty" bson:"state,omitempty"`
	Country      string    `json:"country,omitempty" bson:"country,omitempty"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Summary is the public owner view attached to property reads.
func (u User) Summary() *OwnerSummary {
	return &OwnerSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
