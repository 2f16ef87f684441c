package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/estate-api/internal/access"
	"github.com/baharkarakas/estate-api/internal/api/validate"
	"github.com/baharkarakas/estate-api/internal/models"
)

func TestCreate_OwnerComesFromIdentity(t *testing.T) {
	f := newFixture(t)
	alice := f.seller(t, "alice@example.com")

	p := f.property(t, alice)
	assert.Equal(t, alice.UserID, p.OwnerID)
	assert.True(t, access.CanMutate(p, alice.UserID))
	assert.False(t, access.CanMutate(p, "someone-else"))
}

func TestCreate_RoleGate(t *testing.T) {
	f := newFixture(t)
	price := 10.0
	buyer := access.Identity{UserID: "b1", Role: models.RoleBuyer}

	_, err := f.props.Create(context.Background(), buyer, CreatePropertyInput{Title: "x", Price: &price, Location: "y"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	alice := f.seller(t, "alice@example.com")

	_, err := f.props.Create(context.Background(), alice, CreatePropertyInput{Title: "  ", Price: ptr(-1.0)})
	var errs validate.Errs
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestList_ReturnsAllWithOwnerSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.props.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	alice := f.seller(t, "alice@example.com")
	for i := 0; i < 3; i++ {
		f.property(t, alice)
	}

	list, err = f.props.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, p := range list {
		require.NotNil(t, p.Owner)
		assert.Equal(t, alice.UserID, p.Owner.ID)
		assert.Equal(t, "alice@example.com", p.Owner.Email)
	}
}

func TestUpdate_MissingPropertyIsNotFoundForAnyRequester(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seller(t, "alice@example.com")

	for _, id := range []access.Identity{alice, {}, {UserID: "ghost", Role: models.RoleViewer}} {
		_, err := f.props.Update(ctx, id, "missing", models.PropertyPatch{Title: ptr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, f.props.Remove(ctx, id, "missing"), ErrNotFound)
	}
}

func TestUpdate_NonOwnerSellerIsForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seller(t, "alice@example.com")
	bob := f.seller(t, "bob@example.com")
	p := f.property(t, alice)

	_, err := f.props.Update(ctx, bob, p.ID, models.PropertyPatch{Title: ptr("hijacked")})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.props.Remove(ctx, bob, p.ID), ErrForbidden)

	got, err := f.props.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sea view flat", got.Title)
}

func TestUpdate_OnlyPriceChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seller(t, "alice@example.com")
	p := f.property(t, alice)

	updated, err := f.props.Update(ctx, alice, p.ID, models.PropertyPatch{Price: ptr(0.0)})
	require.NoError(t, err)

	assert.Equal(t, 0.0, updated.Price)
	assert.Equal(t, p.Title, updated.Title)
	assert.Equal(t, p.Description, updated.Description)
	assert.Equal(t, p.Location, updated.Location)
	assert.Equal(t, alice.UserID, updated.OwnerID)
}

func TestUpdate_RejectsBlankTitle(t *testing.T) {
	f := newFixture(t)
	alice := f.seller(t, "alice@example.com")
	p := f.property(t, alice)

	_, err := f.props.Update(context.Background(), alice, p.ID, models.PropertyPatch{Title: ptr(" ")})
	var errs validate.Errs
	assert.ErrorAs(t, err, &errs)
}

func TestUpdate_TrimsPresentStrings(t *testing.T) {
	f := newFixture(t)
	alice := f.seller(t, "alice@example.com")
	p := f.property(t, alice)

	updated, err := f.props.Update(context.Background(), alice, p.ID, models.PropertyPatch{
		Title:       ptr("  padded  "),
		Description: ptr(" roomy\n"),
		Location:    ptr("\tAnkara "),
	})
	require.NoError(t, err)
	assert.Equal(t, "padded", updated.Title)
	assert.Equal(t, "roomy", updated.Description)
	assert.Equal(t, "Ankara", updated.Location)
}

func TestUpdate_ResponseCarriesOwnerSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seller(t, "alice@example.com")
	p := f.property(t, alice)

	tests := []struct {
		name  string
		patch models.PropertyPatch
	}{
		{"empty patch", models.PropertyPatch{}},
		{"title change", models.PropertyPatch{Title: ptr("Renamed")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := f.props.Update(ctx, alice, p.ID, tt.patch)
			require.NoError(t, err)
			require.NotNil(t, updated.Owner)
			assert.Equal(t, alice.UserID, updated.Owner.ID)
			assert.Equal(t, "alice@example.com", updated.Owner.Email)
		})
	}
}

func TestRemove_ByOwnerWritesAudit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seller(t, "alice@example.com")
	p := f.property(t, alice)

	require.NoError(t, f.props.Remove(ctx, alice, p.ID))
	_, err := f.props.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	f.pool.Stop()
	logs := f.store.AuditLogs()
	require.Len(t, logs, 2)
	actions := []models.AuditAction{logs[0].Action, logs[1].Action}
	assert.ElementsMatch(t, []models.AuditAction{models.AuditCreated, models.AuditDeleted}, actions)
	for _, l := range logs {
		assert.Equal(t, p.ID, l.EntityID)
		assert.Equal(t, alice.UserID, l.ActorID)
	}
}
