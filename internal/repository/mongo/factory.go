// Package mongo stores users, properties and audit logs as documents.
package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	repo "github.com/baharkarakas/estate-api/internal/repository"
)

const (
	UsersCollection      = "users"
	PropertiesCollection = "properties"
	AuditLogsCollection  = "audit_logs"
)

func NewRepositories(db *mongo.Database) repo.Repositories {
	return repo.Repositories{
		Users:      &usersRepo{db.Collection(UsersCollection)},
		Properties: &propertiesRepo{coll: db.Collection(PropertiesCollection)},
		AuditLogs:  &auditLogsRepo{db.Collection(AuditLogsCollection)},
	}
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repo.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return repo.ErrDuplicate
	}
	return err
}
