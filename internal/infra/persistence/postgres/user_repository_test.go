package postgres

import (
	"context"
	"testing"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, entity.RoleCustomer, byEmail.Role)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", byID.Name)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "A", Email: "dup@example.com", PasswordHash: "h", Role: entity.RoleOwner}))

	err := repo.Create(ctx, &entity.User{Name: "B", Email: "dup@example.com", PasswordHash: "h", Role: entity.RoleCustomer})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "A", Email: "case@example.com", PasswordHash: "h", Role: entity.RoleCustomer}))

	_, err := repo.FindByEmail(ctx, "CASE@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_NotFoundAndFindByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	first := &entity.User{Name: "A", Email: "a@example.com", PasswordHash: "h", Role: entity.RoleCustomer}
	second := &entity.User{Name: "B", Email: "b@example.com", PasswordHash: "h", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	users, err := repo.FindByIDs(ctx, []uuid.UUID{first.ID, second.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
