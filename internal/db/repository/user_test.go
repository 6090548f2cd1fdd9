package repository

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peopled/internal/domain"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	_, _, _, users := setupRepos(t)
	ctx := context.Background()

	u, err := users.Create(ctx, &domain.User{
		Email: "admin@example.com", PasswordHash: "hash", Role: domain.RoleHRAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	byEmail, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, domain.RoleHRAdmin, byEmail.Role)
	assert.Nil(t, byEmail.EmployeeID)

	byID, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", byID.Email)
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	_, _, _, users := setupRepos(t)

	_, err := users.GetByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	_, _, _, users := setupRepos(t)
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{
		Email: "admin@example.com", PasswordHash: "hash", Role: domain.RoleHRAdmin,
	})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{
		Email: "admin@example.com", PasswordHash: "hash2", Role: domain.RoleEmployee,
	})
	require.Error(t, err)
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUserRepo_Count(t *testing.T) {
	_, _, _, users := setupRepos(t)
	ctx := context.Background()

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = users.Create(ctx, &domain.User{
		Email: "admin@example.com", PasswordHash: "hash", Role: domain.RoleHRAdmin,
	})
	require.NoError(t, err)

	n, err = users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
