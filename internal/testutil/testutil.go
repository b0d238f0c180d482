// Package testutil provides helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ze-Austin/ze-blog/internal/migrations"
	"github.com/Ze-Austin/ze-blog/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// PrepareDB ensures the schema exists and starts from empty tables.
// Tests sharing a database must not run in parallel with each other.
func PrepareDB(ctx context.Context, t testing.TB) string {
	t.Helper()

	databaseURL := RequireEnv(t, "DATABASE_URL")

	if err := migrations.Up(ctx, databaseURL); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, "TRUNCATE articles, messages, users RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return databaseURL
}

var uniqueCounter atomic.Int64

// UniqueName returns a value unique across the test run, for columns
// carrying a UNIQUE constraint.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), uniqueCounter.Add(1))
}

// NewTestUser builds a user with unique username and email.
func NewTestUser(t testing.TB) *model.User {
	t.Helper()
	name := UniqueName("user")
	return &model.User{
		Username:     name,
		FirstName:    "Test",
		LastName:     "User",
		Email:        name + "@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdHNhbHQ$aGFzaGhhc2g",
	}
}

// NewTestArticle builds an article owned by the given user.
func NewTestArticle(t testing.TB, owner *model.User) *model.Article {
	t.Helper()
	return &model.Article{
		Title:   UniqueName("title"),
		Content: "Some thoughts worth sharing.",
		UserID:  owner.ID,
		Author:  owner.Username,
	}
}
