package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Rename sets the deck's name.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Deck, error) {
	var errs []domain.FieldError
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if s.rules.IsInvalidName(name) {
		errs = append(errs, domain.FieldError{Field: "name", Message: "invalid name"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	name = strings.TrimSpace(name)
	deck, err := s.update(ctx, id, func(d *domain.Deck) { d.Name = name })
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck renamed",
		slog.String("deck_id", id.String()),
		slog.String("name", name),
	)
	return deck, nil
}

// ChangeVisibility sets the deck's visibility. Existing shares are kept.
func (s *Service) ChangeVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Deck, error) {
	var errs []domain.FieldError
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !v.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	deck, err := s.update(ctx, id, func(d *domain.Deck) { d.Visibility = v })
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck visibility changed",
		slog.String("deck_id", id.String()),
		slog.String("visibility", v.String()),
	)
	return deck, nil
}

func (s *Service) update(ctx context.Context, id uuid.UUID, mutate func(d *domain.Deck)) (*domain.Deck, error) {
	var deck *domain.Deck
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deck, err = s.decks.Get(txCtx, id)
		if err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		mutate(deck)
		deck.UpdatedAt = s.now().UTC()

		if err := s.decks.Put(txCtx, deck); err != nil {
			return fmt.Errorf("put deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deck, nil
}
