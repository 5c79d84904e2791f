package like

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

type repo[T any] interface {
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Put(ctx context.Context, e *T) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service toggles the "actor likes target" relation. The relation is stored
// on both sides as id sets; a target's like count is the size of its
// liked-by set.
type Service struct {
	users    repo[domain.User]
	decks    repo[domain.Deck]
	answers  repo[domain.Answer]
	comments repo[domain.Comment]
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new like Service.
func NewService(
	log *slog.Logger,
	users repo[domain.User],
	decks repo[domain.Deck],
	answers repo[domain.Answer],
	comments repo[domain.Comment],
	tx txManager,
) *Service {
	return &Service{
		users:    users,
		decks:    decks,
		answers:  answers,
		comments: comments,
		tx:       tx,
		log:      log.With("service", "like"),
		now:      time.Now,
	}
}
