package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/estate-api/internal/models"
	repo "github.com/baharkarakas/estate-api/internal/repository"
)

func TestUsers_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(New())

	u, err := repos.Users.Create(ctx, models.User{Name: "Ali", Email: "ali@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	_, err = repos.Users.Create(ctx, models.User{Name: "Ali 2", Email: "ali@example.com"})
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	got, err := repos.Users.GetByEmail(ctx, "ali@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repos.Users.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProperties_CRUD(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(New())

	owner, err := repos.Users.Create(ctx, models.User{Name: "Ayse", Email: "ayse@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	p, err := repos.Properties.Create(ctx, models.Property{Title: "Flat", Price: 10, Location: "Bursa", OwnerID: owner.ID})
	require.NoError(t, err)

	got, err := repos.Properties.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	assert.Equal(t, models.OwnerSummary{ID: owner.ID, Name: "Ayse", Email: "ayse@example.com"}, *got.Owner)

	// owner is not writable through Update
	updated, err := repos.Properties.Update(ctx, models.Property{ID: p.ID, Title: "Flat 2", Price: 20, Location: "Bursa", OwnerID: "someone-else"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, updated.OwnerID)
	assert.Equal(t, "Flat 2", updated.Title)

	list, err := repos.Properties.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repos.Properties.Delete(ctx, p.ID))
	assert.ErrorIs(t, repos.Properties.Delete(ctx, p.ID), repo.ErrNotFound)
	_, err = repos.Properties.Update(ctx, models.Property{ID: p.ID})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	list, err = repos.Properties.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
