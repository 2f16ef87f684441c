package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/estate-api/internal/api/validate"
	"github.com/baharkarakas/estate-api/internal/auth"
	"github.com/baharkarakas/estate-api/internal/models"
)

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Register(ctx, RegisterInput{
		Name: " Zeynep ", Email: " Zeynep@Example.com ", Phone: "555", Password: "hunter2", Age: ptr(31),
	})
	require.NoError(t, err)

	assert.Equal(t, "Zeynep", u.Name)
	assert.Equal(t, "zeynep@example.com", u.Email)
	assert.Equal(t, models.RoleViewer, u.Role)
	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.NoError(t, auth.VerifyPassword("hunter2", u.PasswordHash))

	got, err := f.users.Authenticate(ctx, "ZEYNEP@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, RegisterInput{Name: "A", Email: "dup@example.com", Phone: "1", Password: "x"})
	require.NoError(t, err)

	_, err = f.users.Register(ctx, RegisterInput{Name: "B", Email: "DUP@example.com", Phone: "2", Password: "y"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Register(context.Background(), RegisterInput{Email: "bad", Role: "admin"})
	var errs validate.Errs
	require.ErrorAs(t, err, &errs)

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"name", "email", "phone", "password", "role"} {
		assert.True(t, fields[want], "expected error on %s", want)
	}
}

func TestAuthenticate_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seller(t, "known@example.com")

	_, errUnknown := f.users.Authenticate(ctx, "nobody@example.com", "whatever")
	_, errWrong := f.users.Authenticate(ctx, "known@example.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLoginAndRefresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.seller(t, "s@example.com")

	sess, err := f.users.Login(ctx, "s@example.com", "pw-s@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.AccessToken)
	assert.NotEmpty(t, sess.RefreshToken)
	assert.Equal(t, id.UserID, sess.User.ID)
	assert.Positive(t, sess.ExpiresIn)

	again, err := f.users.Refresh(ctx, sess.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, id.UserID, again.User.ID)

	_, err = f.users.Refresh(ctx, sess.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
