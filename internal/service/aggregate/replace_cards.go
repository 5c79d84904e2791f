package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// ReplaceCards deletes every card of the deck and attaches cards in their
// place, preserving the given order. It returns the new card ids.
func (s *Service) ReplaceCards(ctx context.Context, deckID uuid.UUID, cards []CardSpec) ([]uuid.UUID, error) {
	var errs []domain.FieldError
	if deckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = append(errs, validateCards(cards)...)
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	var (
		ids     []uuid.UUID
		removed int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deck, err := s.decks.Get(txCtx, deckID)
		if err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		removed, err = s.dropCards(txCtx, deck.CardIDs)
		if err != nil {
			return err
		}

		ids = make([]uuid.UUID, 0, len(cards))
		for _, cs := range cards {
			card := newCard(deckID, cs)
			if err := s.cards.Put(txCtx, card); err != nil {
				return fmt.Errorf("put card: %w", err)
			}
			ids = append(ids, card.ID)
		}

		deck.CardIDs = ids
		deck.UpdatedAt = s.now().UTC()
		if err := s.decks.Put(txCtx, deck); err != nil {
			return fmt.Errorf("put deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck cards replaced",
		slog.String("deck_id", deckID.String()),
		slog.Int("removed", removed),
		slog.Int("added", len(ids)),
	)

	return ids, nil
}
