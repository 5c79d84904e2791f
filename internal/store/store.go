// Package store defines the persistence contract shared by every entity
// kind. Implementations live under internal/adapter.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Collection persists entities of a single kind, keyed by id.
//
// Get and Delete return a *domain.NotFoundError when the id is absent.
// Inside a transaction Get locks the entity for writing; Lookup never locks
// and is meant for existence checks and for finding an owner before its
// row is locked. Put inserts or replaces. List returns every entity of the kind, most
// recently written first.
type Collection[T domain.Entity] interface {
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Lookup(ctx context.Context, id uuid.UUID) (*T, error)
	Put(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*T, error)
}

// TxManager runs fn inside a transaction. Collection calls made with the
// context passed to fn join that transaction. The transaction commits when
// fn returns nil and rolls back otherwise. fn may run more than once when
// the backend retries a transaction that lost a lock conflict.
//
// Transactions lock entities with Get in kind order: User, Statistics,
// Deck, Card, Answer, Comment, Reply. Lookup a child first when its owner
// has to be locked before it.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Set bundles the transaction manager with one collection per kind.
type Set struct {
	Tx         TxManager
	Users      Collection[domain.User]
	Statistics Collection[domain.Statistics]
	Decks      Collection[domain.Deck]
	Cards      Collection[domain.Card]
	Answers    Collection[domain.Answer]
	Comments   Collection[domain.Comment]
	Replies    Collection[domain.Reply]
}
