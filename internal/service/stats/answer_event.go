package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// RecordAnswerEvent counts one right or wrong answer for (user, card). The
// per-card entry is created on the first event for the pair.
func (s *Service) RecordAnswerEvent(ctx context.Context, userID, cardID uuid.UUID, correct bool) (domain.CardStatistics, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if cardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.CardStatistics{}, domain.NewValidationErrors(errs)
	}

	var result domain.CardStatistics
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, stats, err := s.load(txCtx, userID, false)
		if err != nil {
			return err
		}
		if _, err := s.cards.Lookup(txCtx, cardID); err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		result = stats.RecordAnswer(cardID, correct)
		if err := s.stats.Put(txCtx, stats); err != nil {
			return fmt.Errorf("put statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.CardStatistics{}, err
	}

	s.log.DebugContext(ctx, "answer recorded",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Bool("correct", correct),
	)

	return result, nil
}
