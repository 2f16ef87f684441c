package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/estate-api/internal/repository"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Users:      &usersRepo{pool},
		Properties: &propertiesRepo{pool},
		AuditLogs:  &auditLogsRepo{pool},
	}
}

// mapErr translates driver errors into repository errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return repo.ErrDuplicate
		case "22P02": // invalid uuid text
			return repo.ErrNotFound
		}
	}
	return err
}
