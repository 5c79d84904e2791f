package aggregate

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/adapter/memstore"
	"github.com/Elephant-Learning/Elephant-Backend/internal/config"
	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/store"
	"github.com/Elephant-Learning/Elephant-Backend/internal/textrule"
)

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRules() *textrule.Rules {
	return textrule.New(config.DefaultTunables())
}

// newStoreService wires a Service over an in-memory store.
func newStoreService(t *testing.T) (*Service, store.Set) {
	t.Helper()
	set := memstore.New().Set()
	return newServiceFromSet(set), set
}

func newServiceFromSet(set store.Set) *Service {
	svc := NewService(
		discardLogger(),
		set.Users,
		set.Decks,
		set.Cards,
		set.Answers,
		set.Comments,
		set.Replies,
		set.Tx,
		testRules(),
	)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func seedUser(t *testing.T, set store.Set, enabled bool) *domain.User {
	t.Helper()
	ctx := context.Background()
	user, stats := domain.NewUser(uuid.New())
	user.Enabled = enabled
	if err := set.Statistics.Put(ctx, stats); err != nil {
		t.Fatalf("seed statistics: %v", err)
	}
	if err := set.Users.Put(ctx, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func mustGet[T domain.Entity](t *testing.T, c store.Collection[T], id uuid.UUID) *T {
	t.Helper()
	e, err := c.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return e
}

// failingPut wraps a collection so that Put always fails.
type failingPut[T domain.Entity] struct {
	store.Collection[T]
	err error
}

func (f failingPut[T]) Put(context.Context, *T) error { return f.err }
