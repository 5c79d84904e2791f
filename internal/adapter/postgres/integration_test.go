package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Elephant-Learning/Elephant-Backend/internal/adapter/postgres"
	"github.com/Elephant-Learning/Elephant-Backend/internal/adapter/postgres/testhelper"
	"github.com/Elephant-Learning/Elephant-Backend/internal/config"
	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/deck"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/like"
	"github.com/Elephant-Learning/Elephant-Backend/internal/textrule"
)

func TestSet_RoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	set := postgres.NewSet(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	deck := &domain.Deck{ID: uuid.New(), AuthorID: user.ID, Name: "Integration", Visibility: domain.VisibilityPublic}
	deck.LikedBy.Add(user.ID)

	if err := set.Decks.Put(ctx, deck); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := set.Decks.Get(ctx, deck.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != deck.Name || !got.LikedBy.Has(user.ID) {
		t.Fatalf("Get = %+v, want %+v", got, deck)
	}

	got.Name = "Renamed"
	if err := set.Decks.Put(ctx, got); err != nil {
		t.Fatalf("Put (replace): %v", err)
	}
	again, err := set.Decks.Get(ctx, deck.ID)
	if err != nil || again.Name != "Renamed" {
		t.Fatalf("Get after replace = %+v, %v", again, err)
	}

	if err := set.Decks.Delete(ctx, deck.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := set.Decks.Get(ctx, deck.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get after delete: want ErrNotFound, got %v", err)
	}
	if err := set.Decks.Delete(ctx, deck.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete: want ErrNotFound, got %v", err)
	}
}

func TestSet_RollbackDiscardsWrites(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	set := postgres.NewSet(pool)
	ctx := context.Background()

	card := &domain.Card{ID: uuid.New(), DeckID: uuid.New(), Term: "rolled back"}
	sentinel := errors.New("abort")

	err := set.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := set.Cards.Put(ctx, card); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("RunInTx: want sentinel, got %v", err)
	}

	if _, err := set.Cards.Get(ctx, card.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("card must not exist after rollback, got %v", err)
	}
}

// Liking a deck and receiving it as a share both write the user and the
// deck. Run them against each other and check that every pair lands on
// both sides.
func TestSet_ConcurrentLikeAndShare(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	set := postgres.NewSet(pool)
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	likes := like.NewService(log, set.Users, set.Decks, set.Answers, set.Comments, set.Tx)
	decks := deck.NewService(log, set.Decks, set.Users, set.Tx, textrule.New(config.DefaultTunables()))

	author := testhelper.SeedUser(t, pool)
	d := &domain.Deck{ID: uuid.New(), AuthorID: author.ID, Name: "Shared", Visibility: domain.VisibilityPublic}
	if err := set.Decks.Put(ctx, d); err != nil {
		t.Fatalf("Put deck: %v", err)
	}

	const users = 8
	ids := make([]uuid.UUID, users)
	for i := range ids {
		ids[i] = testhelper.SeedUser(t, pool).ID
	}

	for round := range 3 {
		g, gCtx := errgroup.WithContext(ctx)
		for _, id := range ids {
			liked := round%2 == 0
			g.Go(func() error {
				_, err := likes.SetLiked(gCtx, like.SetLikedInput{
					ActorID: id, TargetID: d.ID, Kind: domain.KindDeck, Liked: liked,
				})
				return err
			})
			g.Go(func() error {
				if liked {
					_, err := decks.Share(gCtx, d.ID, id)
					return err
				}
				return decks.Unshare(gCtx, d.ID, id)
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
	}

	// The last round (round 2) liked and shared.
	got, err := set.Decks.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get deck: %v", err)
	}
	for _, id := range ids {
		u, err := set.Users.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get user: %v", err)
		}
		if !got.LikedBy.Has(id) || !u.LikedDeckIDs.Has(d.ID) {
			t.Errorf("user %s: like not recorded on both sides", id)
		}
		if !got.SharedWith.Has(id) || !u.SharedDeckIDs.Has(d.ID) {
			t.Errorf("user %s: share not recorded on both sides", id)
		}
	}
	if got.Likes() != users {
		t.Errorf("likes = %d, want %d", got.Likes(), users)
	}
}
