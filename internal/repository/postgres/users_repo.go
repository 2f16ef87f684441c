// internal/repository/postgres/users_repo.go
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/estate-api/internal/models"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userColumns = `id, name, email, phone, password_hash, age, address, state, country, role, created_at, updated_at`

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users(id, name, email, phone, password_hash, age, address, state, country, role)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Age, u.Address, u.State, u.Country, u.Role,
	)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return r.GetByID(ctx, u.ID)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *usersRepo) getOne(ctx context.Context, q string, arg any) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, q, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Age,
		&u.Address, &u.State, &u.Country, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, mapErr(err)
}
