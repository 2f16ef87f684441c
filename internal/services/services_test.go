package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/estate-api/internal/access"
	"github.com/baharkarakas/estate-api/internal/auth"
	"github.com/baharkarakas/estate-api/internal/models"
	"github.com/baharkarakas/estate-api/internal/repository/memory"
	"github.com/baharkarakas/estate-api/internal/worker"
)

// --- helpers ---

type fixture struct {
	store *memory.Store
	users *UserService
	props *PropertyService
	pool  *worker.Pool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	repos := memory.NewRepositories(store)
	tm := auth.NewTokenManager("a", "r", time.Minute, time.Hour)
	pool := worker.NewPool(1)
	t.Cleanup(pool.Stop)
	return &fixture{
		store: store,
		users: NewUserService(repos.Users, tm),
		props: NewPropertyService(repos.Properties, repos.AuditLogs, pool),
		pool:  pool,
	}
}

func (f *fixture) seller(t *testing.T, email string) access.Identity {
	t.Helper()
	u, err := f.users.Register(context.Background(), RegisterInput{
		Name: "Seller " + email, Email: email, Phone: "555-0100", Password: "pw-" + email, Role: "seller",
	})
	require.NoError(t, err)
	return access.Identity{UserID: u.ID, Role: u.Role}
}

func (f *fixture) property(t *testing.T, owner access.Identity) models.Property {
	t.Helper()
	price := 1500.0
	p, err := f.props.Create(context.Background(), owner, CreatePropertyInput{
		Title: "Sea view flat", Description: "two rooms", Price: &price, Location: "Izmir",
	})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }
