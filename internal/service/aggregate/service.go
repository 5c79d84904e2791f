// Package aggregate keeps owner/child links consistent. Every child entity
// stores its owner's id (the parent-of lookup) and every owner stores the
// ids of its children; both sides are written in the same transaction.
package aggregate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/textrule"
)

type repo[T any] interface {
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Lookup(ctx context.Context, id uuid.UUID) (*T, error)
	Put(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service attaches children to owners and detaches them with their whole
// subtree.
type Service struct {
	users    repo[domain.User]
	decks    repo[domain.Deck]
	cards    repo[domain.Card]
	answers  repo[domain.Answer]
	comments repo[domain.Comment]
	replies  repo[domain.Reply]
	tx       txManager
	rules    *textrule.Rules
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new aggregate Service.
func NewService(
	log *slog.Logger,
	users repo[domain.User],
	decks repo[domain.Deck],
	cards repo[domain.Card],
	answers repo[domain.Answer],
	comments repo[domain.Comment],
	replies repo[domain.Reply],
	tx txManager,
	rules *textrule.Rules,
) *Service {
	return &Service{
		users:    users,
		decks:    decks,
		cards:    cards,
		answers:  answers,
		comments: comments,
		replies:  replies,
		tx:       tx,
		rules:    rules,
		log:      log.With("service", "aggregate"),
		now:      time.Now,
	}
}
