package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Elephant-Learning/Elephant-Backend/internal/adapter/postgres"
	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// SeedUser stores an enabled user with its statistics record.
// Returns the stored domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user, stats := domain.NewUser(uuid.New())

	if err := postgres.NewCollection[domain.Statistics](pool).Put(ctx, stats); err != nil {
		t.Fatalf("testhelper: SeedUser put statistics: %v", err)
	}
	if err := postgres.NewCollection[domain.User](pool).Put(ctx, user); err != nil {
		t.Fatalf("testhelper: SeedUser put user: %v", err)
	}

	return *user
}
