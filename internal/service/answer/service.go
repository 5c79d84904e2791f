// Package answer provides the question-thread features that sit beside
// the aggregate: editing answers, comments and replies, tagging, search and
// the answers feed.
package answer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/textrule"
)

type repo[T any] interface {
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Put(ctx context.Context, e *T) error
}

type answerRepo interface {
	repo[domain.Answer]
	List(ctx context.Context) ([]*domain.Answer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides answer operations.
type Service struct {
	answers   answerRepo
	comments  repo[domain.Comment]
	replies   repo[domain.Reply]
	users     repo[domain.User]
	tx        txManager
	rules     *textrule.Rules
	feedLimit int
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new answer Service. Feed returns at most feedLimit
// answers.
func NewService(
	log *slog.Logger,
	answers answerRepo,
	comments repo[domain.Comment],
	replies repo[domain.Reply],
	users repo[domain.User],
	tx txManager,
	rules *textrule.Rules,
	feedLimit int,
) *Service {
	return &Service{
		answers:   answers,
		comments:  comments,
		replies:   replies,
		users:     users,
		tx:        tx,
		rules:     rules,
		feedLimit: feedLimit,
		log:       log.With("service", "answer"),
		now:       time.Now,
	}
}

// mutate loads the entity, applies fn and writes it back in one transaction.
func mutate[T any](ctx context.Context, tx txManager, r repo[T], what string, id uuid.UUID, fn func(e *T)) (*T, error) {
	var e *T
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		e, err = r.Get(txCtx, id)
		if err != nil {
			return fmt.Errorf("get %s: %w", what, err)
		}
		fn(e)
		if err := r.Put(txCtx, e); err != nil {
			return fmt.Errorf("put %s: %w", what, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func requireID(field string, id uuid.UUID) []domain.FieldError {
	if id == uuid.Nil {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	return nil
}
