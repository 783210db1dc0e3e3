// Package testutil provides shared helpers for tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/userd/userd/internal/model"
	"github.com/userd/userd/internal/repository"
)

// NewStore opens a throwaway in-memory SQLite store with the schema migrated.
// The store is closed when the test finishes.
func NewStore(t testing.TB) *repository.Repository {
	t.Helper()

	repo, err := repository.New(context.Background(), "", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}

	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return repo
}

// NewTestUser creates an unsaved test user with sensible defaults.
func NewTestUser(t testing.TB, name string) *model.User {
	t.Helper()
	return &model.User{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
	}
}

// CreateTestUser inserts a test user and returns the stored record.
func CreateTestUser(t testing.TB, repo *repository.Repository, name string) *model.User {
	t.Helper()

	user := NewTestUser(t, name)
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// UniqueName generates a unique name for tests.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
