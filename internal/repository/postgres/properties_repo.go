package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/estate-api/internal/models"
	"github.com/baharkarakas/estate-api/internal/repository"
)

type propertiesRepo struct{ pool *pgxpool.Pool }

const propertyWithOwner = `
SELECT p.id, p.title, p.description, p.price, p.location, p.owner_id, p.created_at, p.updated_at,
       u.name, u.email
  FROM properties p
  JOIN users u ON u.id = p.owner_id`

func (r *propertiesRepo) Create(ctx context.Context, p models.Property) (models.Property, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO properties(id, title, description, price, location, owner_id)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING created_at, updated_at`,
		p.ID, p.Title, p.Description, p.Price, p.Location, p.OwnerID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Property{}, mapErr(err)
	}
	return p, nil
}

func (r *propertiesRepo) GetByID(ctx context.Context, id string) (models.Property, error) {
	row := r.pool.QueryRow(ctx, propertyWithOwner+` WHERE p.id=$1`, id)
	p, err := scanProperty(row)
	return p, mapErr(err)
}

func (r *propertiesRepo) List(ctx context.Context) ([]models.Property, error) {
	rows, err := r.pool.Query(ctx, propertyWithOwner+` ORDER BY p.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertiesRepo) Update(ctx context.Context, p models.Property) (models.Property, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE properties
		    SET title=$2, description=$3, price=$4, location=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING owner_id, created_at, updated_at`,
		p.ID, p.Title, p.Description, p.Price, p.Location,
	).Scan(&p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Property{}, mapErr(err)
	}
	return p, nil
}

func (r *propertiesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanProperty(row pgx.Row) (models.Property, error) {
	var p models.Property
	owner := &models.OwnerSummary{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Location, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		&owner.Name, &owner.Email,
	)
	if err != nil {
		return models.Property{}, err
	}
	owner.ID = p.OwnerID
	p.Owner = owner
	return p, nil
}
