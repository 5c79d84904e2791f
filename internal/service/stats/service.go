// Package stats records study activity: per-card answer counters, login
// streaks, usage time and the user's answers score.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

type userRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Lookup(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type cardRepo interface {
	Lookup(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}

type statisticsRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Statistics, error)
	Put(ctx context.Context, s *domain.Statistics) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides statistics operations.
type Service struct {
	users        userRepo
	cards        cardRepo
	stats        statisticsRepo
	tx           txManager
	log          *slog.Logger
	maxUsageStep time.Duration
	now          func() time.Time
}

// NewService creates a new statistics Service. maxUsageStep bounds a single
// IncreaseUsageTime call.
func NewService(
	log *slog.Logger,
	users userRepo,
	cards cardRepo,
	stats statisticsRepo,
	tx txManager,
	maxUsageStep time.Duration,
) *Service {
	return &Service{
		users:        users,
		cards:        cards,
		stats:        stats,
		tx:           tx,
		log:          log.With("service", "stats"),
		maxUsageStep: maxUsageStep,
		now:          time.Now,
	}
}

// load fetches the user and locks its statistics record. The user row is
// not locked. When requireEnabled is set a disabled user is rejected with
// Forbidden.
func (s *Service) load(ctx context.Context, userID uuid.UUID, requireEnabled bool) (*domain.User, *domain.Statistics, error) {
	user, err := s.users.Lookup(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}
	if requireEnabled && !user.Enabled {
		return nil, nil, domain.NewForbiddenError("user not enabled")
	}

	stats, err := s.stats.Get(ctx, user.StatisticsID)
	if err != nil {
		return nil, nil, fmt.Errorf("get statistics: %w", err)
	}
	return user, stats, nil
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}
