package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Get returns a deck by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return deck, nil
}

// List returns every deck, most recently written first.
func (s *Service) List(ctx context.Context) ([]*domain.Deck, error) {
	decks, err := s.decks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// SearchByName returns the non-private decks whose name contains q,
// ignoring case.
func (s *Service) SearchByName(ctx context.Context, q string) ([]*domain.Deck, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	decks, err := s.decks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	out := make([]*domain.Deck, 0)
	for _, d := range decks {
		if d.Visibility == domain.VisibilityPrivate {
			continue
		}
		if strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return out, nil
}
