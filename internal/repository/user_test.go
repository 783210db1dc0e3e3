package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userd/userd/internal/model"
	"github.com/userd/userd/internal/repository"
	"github.com/userd/userd/internal/testutil"
)

func TestCreateUser_AssignsIDAndCreatedAt(t *testing.T) {
	repo := testutil.NewStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	user := &model.User{Name: "Ann", Email: "a@x.com"}

	err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	assert.Positive(t, user.ID)
	assert.False(t, user.CreatedAt.Before(before), "CreatedAt should be set at insertion time")
}

func TestGetUserByID_RoundTrip(t *testing.T) {
	repo := testutil.NewStore(t)
	ctx := context.Background()

	created := testutil.CreateTestUser(t, repo, "ann")

	got, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Email, got.Email)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo := testutil.NewStore(t)

	_, err := repo.GetUserByID(context.Background(), 12345)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestListUsers_InsertionOrder(t *testing.T) {
	repo := testutil.NewStore(t)
	ctx := context.Background()

	first := testutil.CreateTestUser(t, repo, "first")
	second := testutil.CreateTestUser(t, repo, "second")
	third := testutil.CreateTestUser(t, repo, "third")

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
	assert.Equal(t, third.ID, users[2].ID)
}

func TestListUsers_Empty(t *testing.T) {
	repo := testutil.NewStore(t)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUpdateUser_OverwritesBothFields(t *testing.T) {
	repo := testutil.NewStore(t)
	ctx := context.Background()

	created := testutil.CreateTestUser(t, repo, "ann")

	updated, err := repo.UpdateUser(ctx, created.ID, "Bea", "b@x.com")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Bea", updated.Name)
	assert.Equal(t, "b@x.com", updated.Email)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	got, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bea", got.Name)
	assert.Equal(t, "b@x.com", got.Email)
}

func TestUpdateUser_NotFoundDoesNotCreate(t *testing.T) {
	repo := testutil.NewStore(t)
	ctx := context.Background()

	testutil.CreateTestUser(t, repo, "ann")

	_, err := repo.UpdateUser(ctx, 999, "Ghost", "g@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "update on a missing ID must not create a record")
}

func TestDeleteUser_RemovesRecord(t *testing.T) {
	repo := testutil.NewStore(t)
	ctx := context.Background()

	created := testutil.CreateTestUser(t, repo, "ann")

	err := repo.DeleteUser(ctx, created.ID)
	require.NoError(t, err)

	_, err = repo.GetUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := testutil.NewStore(t)

	err := repo.DeleteUser(context.Background(), 54321)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
