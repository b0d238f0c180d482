//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Ze-Austin/ze-blog/internal/testutil"
)

func newTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()

	ctx := context.Background()
	databaseURL := testutil.PrepareDB(ctx, t)

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect repository: %v", err)
	}
	t.Cleanup(repo.Close)

	return ctx, repo
}

func TestIntegrationUserRepository_CreateUser(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := testutil.NewTestUser(t)

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected generated ID to be assigned")
	}

	retrieved, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if retrieved.Username != user.Username {
		t.Errorf("Username mismatch: got %q, want %q", retrieved.Username, user.Username)
	}
	if retrieved.PasswordHash != user.PasswordHash {
		t.Error("PasswordHash should round-trip unchanged")
	}
}

func TestIntegrationUserRepository_CreateUser_DuplicateUsername(t *testing.T) {
	ctx, repo := newTestEnv(t)

	first := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	second := testutil.NewTestUser(t)
	second.Username = first.Username

	err := repo.CreateUser(ctx, second)
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("expected ErrUsernameExists, got: %v", err)
	}

	// The failed insert must not have created a second row.
	exists, err := repo.EmailExists(ctx, second.Email)
	if err != nil {
		t.Fatalf("EmailExists failed: %v", err)
	}
	if exists {
		t.Error("duplicate registration must not create a second user row")
	}
}

func TestIntegrationUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	ctx, repo := newTestEnv(t)

	first := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	second := testutil.NewTestUser(t)
	second.Email = first.Email

	err := repo.CreateUser(ctx, second)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetUserByUsername(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if retrieved.ID != user.ID {
		t.Errorf("ID mismatch: got %d, want %d", retrieved.ID, user.ID)
	}

	// Exact match only: a different casing is a different account.
	_, err = repo.GetUserByUsername(ctx, "ZZZ"+user.Username)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_ExistenceChecks(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	exists, err := repo.UsernameExists(ctx, user.Username)
	if err != nil {
		t.Fatalf("UsernameExists failed: %v", err)
	}
	if !exists {
		t.Error("expected username to exist")
	}

	exists, err = repo.EmailExists(ctx, user.Email)
	if err != nil {
		t.Fatalf("EmailExists failed: %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}

	exists, err = repo.UsernameExists(ctx, testutil.UniqueName("absent"))
	if err != nil {
		t.Fatalf("UsernameExists failed: %v", err)
	}
	if exists {
		t.Error("expected unknown username to not exist")
	}
}
