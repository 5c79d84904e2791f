package answer

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Get returns an answer by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	if errs := requireID("id", id); errs != nil {
		return nil, domain.NewValidationErrors(errs)
	}
	answer, err := s.answers.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}
	return answer, nil
}

// SearchByTitle returns the answers whose title contains q, ignoring case.
func (s *Service) SearchByTitle(ctx context.Context, q string) ([]*domain.Answer, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	answers, err := s.answers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	out := make([]*domain.Answer, 0)
	for _, a := range answers {
		if strings.Contains(strings.ToLower(a.Title), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Feed returns the most recently updated answers, newest first.
func (s *Service) Feed(ctx context.Context) ([]*domain.Answer, error) {
	answers, err := s.answers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	slices.SortStableFunc(answers, func(a, b *domain.Answer) int {
		if c := b.LastUpdated.Compare(a.LastUpdated); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	if len(answers) > s.feedLimit {
		answers = answers[:s.feedLimit]
	}
	return answers, nil
}
