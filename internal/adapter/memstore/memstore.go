// Package memstore is an in-process implementation of the entity store.
// Documents are kept JSON-encoded so callers never share memory with the
// store. Transactions are serialized by a single mutex and work on a copy
// of the state that replaces the live state only when fn succeeds.
package memstore

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/store"
)

type key struct {
	kind domain.Kind
	id   uuid.UUID
}

type document struct {
	body []byte
	seq  uint64 // write order, used for List
}

type state struct {
	docs map[key]document
	seq  uint64
}

func (s state) clone() state {
	return state{docs: maps.Clone(s.docs), seq: s.seq}
}

// Store holds every entity kind in one map.
type Store struct {
	mu    sync.RWMutex
	state state
}

// New returns an empty Store.
func New() *Store {
	return &Store{state: state{docs: make(map[key]document)}}
}

type txCtxKey struct{}

type transaction struct {
	store *Store
	state state
}

func (s *Store) txFromCtx(ctx context.Context) (*transaction, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*transaction)
	if !ok || tx.store != s {
		return nil, false
	}
	return tx, true
}

// RunInTx runs fn with exclusive access to the store. Writes made through
// the context passed to fn become visible only if fn returns nil; on error
// or panic the store is left untouched. Nested calls join the outer
// transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := s.txFromCtx(ctx); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{store: s, state: s.state.clone()}
	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

// Ping always succeeds; it lets the store stand in for a database in
// health checks.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) read(ctx context.Context, fn func(st *state)) {
	if tx, ok := s.txFromCtx(ctx); ok {
		fn(&tx.state)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

func (s *Store) write(ctx context.Context, fn func(st *state)) {
	if tx, ok := s.txFromCtx(ctx); ok {
		fn(&tx.state)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Set wires the store as TxManager and as every collection.
func (s *Store) Set() store.Set {
	return store.Set{
		Tx:         s,
		Users:      NewCollection[domain.User](s),
		Statistics: NewCollection[domain.Statistics](s),
		Decks:      NewCollection[domain.Deck](s),
		Cards:      NewCollection[domain.Card](s),
		Answers:    NewCollection[domain.Answer](s),
		Comments:   NewCollection[domain.Comment](s),
		Replies:    NewCollection[domain.Reply](s),
	}
}
