package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// RecordLogin updates the user's day streak and last-login time. It
// returns the streak after the login.
func (s *Service) RecordLogin(ctx context.Context, userID uuid.UUID) (int, error) {
	if err := requireUser(userID); err != nil {
		return 0, err
	}

	var streak int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, stats, err := s.load(txCtx, userID, true)
		if err != nil {
			return err
		}

		stats.RecordLogin(s.now().UTC())
		streak = stats.DaysStreak
		if err := s.stats.Put(txCtx, stats); err != nil {
			return fmt.Errorf("put statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "login recorded",
		slog.String("user_id", userID.String()),
		slog.Int("days_streak", streak),
	)

	return streak, nil
}

// IncreaseUsageTime adds d to the user's cumulative usage time and returns
// the new total. d must be positive and no larger than the configured step.
func (s *Service) IncreaseUsageTime(ctx context.Context, userID uuid.UUID, d time.Duration) (time.Duration, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if d <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must be positive"})
	} else if d > s.maxUsageStep {
		errs = append(errs, domain.FieldError{Field: "duration", Message: fmt.Sprintf("must be at most %s", s.maxUsageStep)})
	}
	if len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}

	var total time.Duration
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, stats, err := s.load(txCtx, userID, true)
		if err != nil {
			return err
		}

		stats.UsageTime += d
		total = stats.UsageTime
		if err := s.stats.Put(txCtx, stats); err != nil {
			return fmt.Errorf("put statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// IncreaseScore adds delta to the user's answers score and returns the new
// score. The score is independent of the per-card counters.
func (s *Service) IncreaseScore(ctx context.Context, userID uuid.UUID, delta int) (int, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if delta <= 0 {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}

	var score int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Get(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if user.Score > math.MaxInt-delta {
			return domain.NewValidationError("delta", "score would overflow")
		}
		user.Score += delta
		score = user.Score
		if err := s.users.Put(txCtx, user); err != nil {
			return fmt.Errorf("put user: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "score increased",
		slog.String("user_id", userID.String()),
		slog.Int("delta", delta),
		slog.Int("score", score),
	)

	return score, nil
}
