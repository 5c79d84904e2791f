// Package deck provides deck queries and the deck-level mutations that do
// not change ownership: rename, visibility and sharing.
package deck

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/textrule"
)

type deckRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	Lookup(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	Put(ctx context.Context, d *domain.Deck) error
	List(ctx context.Context) ([]*domain.Deck, error)
}

type userRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides deck operations.
type Service struct {
	decks deckRepo
	users userRepo
	tx    txManager
	rules *textrule.Rules
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new deck Service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	users userRepo,
	tx txManager,
	rules *textrule.Rules,
) *Service {
	return &Service{
		decks: decks,
		users: users,
		tx:    tx,
		rules: rules,
		log:   log.With("service", "deck"),
		now:   time.Now,
	}
}
