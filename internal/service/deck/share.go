package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

func validateShare(deckID, recipientID uuid.UUID) error {
	var errs []domain.FieldError
	if deckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if recipientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipient_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// lockShare loads the deck and the recipient for writing. The recipient is
// locked before the deck; the unlocked lookup first keeps a missing deck
// reported ahead of a missing recipient.
func (s *Service) lockShare(ctx context.Context, deckID, recipientID uuid.UUID) (*domain.Deck, *domain.User, error) {
	if _, err := s.decks.Lookup(ctx, deckID); err != nil {
		return nil, nil, fmt.Errorf("get deck: %w", err)
	}
	recipient, err := s.users.Get(ctx, recipientID)
	if err != nil {
		return nil, nil, fmt.Errorf("get recipient: %w", err)
	}
	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("get deck: %w", err)
	}
	return deck, recipient, nil
}

// Share grants recipientID access to the deck. Private decks cannot be
// shared, and the author and disabled users cannot be recipients. Sharing
// twice is a no-op.
func (s *Service) Share(ctx context.Context, deckID, recipientID uuid.UUID) (*domain.Deck, error) {
	if err := validateShare(deckID, recipientID); err != nil {
		return nil, err
	}

	var deck *domain.Deck
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var (
			recipient *domain.User
			err       error
		)
		deck, recipient, err = s.lockShare(txCtx, deckID, recipientID)
		if err != nil {
			return err
		}

		if recipient.ID == deck.AuthorID {
			return domain.NewForbiddenError("cannot share a deck with its author")
		}
		if deck.Visibility == domain.VisibilityPrivate {
			return domain.NewConflictError("deck is private")
		}
		if !recipient.Enabled {
			return domain.NewForbiddenError("recipient not enabled")
		}

		if deck.SharedWith.Add(recipientID) {
			if err := s.decks.Put(txCtx, deck); err != nil {
				return fmt.Errorf("put deck: %w", err)
			}
		}
		if recipient.SharedDeckIDs.Add(deckID) {
			if err := s.users.Put(txCtx, recipient); err != nil {
				return fmt.Errorf("put recipient: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck shared",
		slog.String("deck_id", deckID.String()),
		slog.String("recipient_id", recipientID.String()),
	)
	return deck, nil
}

// Unshare revokes recipientID's access to the deck. Revoking access that
// was never granted is a no-op.
func (s *Service) Unshare(ctx context.Context, deckID, recipientID uuid.UUID) error {
	if err := validateShare(deckID, recipientID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deck, recipient, err := s.lockShare(txCtx, deckID, recipientID)
		if err != nil {
			return err
		}

		if deck.SharedWith.Remove(recipientID) {
			if err := s.decks.Put(txCtx, deck); err != nil {
				return fmt.Errorf("put deck: %w", err)
			}
		}
		if recipient.SharedDeckIDs.Remove(deckID) {
			if err := s.users.Put(txCtx, recipient); err != nil {
				return fmt.Errorf("put recipient: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "deck unshared",
		slog.String("deck_id", deckID.String()),
		slog.String("recipient_id", recipientID.String()),
	)
	return nil
}
