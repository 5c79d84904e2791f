// Package recency maintains each user's recently-viewed deck list.
package recency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

type userRepo interface {
	Lookup(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type deckRepo interface {
	Lookup(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
}

type statisticsRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Statistics, error)
	Put(ctx context.Context, s *domain.Statistics) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records deck views.
type Service struct {
	users    userRepo
	decks    deckRepo
	stats    statisticsRepo
	tx       txManager
	log      *slog.Logger
	maxDecks int
}

// NewService creates a new recency Service keeping at most maxDecks ids per
// user.
func NewService(
	log *slog.Logger,
	users userRepo,
	decks deckRepo,
	stats statisticsRepo,
	tx txManager,
	maxDecks int,
) *Service {
	return &Service{
		users:    users,
		decks:    decks,
		stats:    stats,
		tx:       tx,
		log:      log.With("service", "recency"),
		maxDecks: maxDecks,
	}
}

// RecordView moves deckID to the front of the user's recently-viewed list,
// dropping an earlier occurrence and evicting from the tail past the limit.
// It returns the resulting list, most recent first.
func (s *Service) RecordView(ctx context.Context, userID, deckID uuid.UUID) ([]uuid.UUID, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if deckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	var recent []uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Only the statistics record is written; user and deck are read
		// without row locks so viewers of one deck never wait on each other.
		user, err := s.users.Lookup(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if _, err := s.decks.Lookup(txCtx, deckID); err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		stats, err := s.stats.Get(txCtx, user.StatisticsID)
		if err != nil {
			return fmt.Errorf("get statistics: %w", err)
		}

		recent = stats.ViewDeck(deckID, s.maxDecks)
		if err := s.stats.Put(txCtx, stats); err != nil {
			return fmt.Errorf("put statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "deck viewed",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Int("recent", len(recent)),
	)

	return recent, nil
}
