package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Collection is the store.Collection for one kind over a Store.
type Collection[T domain.Entity] struct {
	s    *Store
	kind domain.Kind
}

// NewCollection binds a Collection for T's kind to s.
func NewCollection[T domain.Entity](s *Store) *Collection[T] {
	var zero T
	return &Collection[T]{s: s, kind: zero.EntityKind()}
}

func (c *Collection[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		doc document
		ok  bool
	)
	c.s.read(ctx, func(st *state) {
		doc, ok = st.docs[key{c.kind, id}]
	})
	if !ok {
		return nil, domain.NewNotFoundError(c.kind, id)
	}
	return c.decode(doc.body)
}

// Lookup is Get: the store serializes whole transactions, so there are no
// row locks to avoid.
func (c *Collection[T]) Lookup(ctx context.Context, id uuid.UUID) (*T, error) {
	return c.Get(ctx, id)
}

func (c *Collection[T]) Put(ctx context.Context, e *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := (*e).EntityID()
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", c.kind, id, err)
	}

	c.s.write(ctx, func(st *state) {
		st.seq++
		st.docs[key{c.kind, id}] = document{body: body, seq: st.seq}
	})
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var ok bool
	c.s.write(ctx, func(st *state) {
		k := key{c.kind, id}
		if _, ok = st.docs[k]; ok {
			delete(st.docs, k)
		}
	})
	if !ok {
		return domain.NewNotFoundError(c.kind, id)
	}
	return nil
}

func (c *Collection[T]) List(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var docs []document
	c.s.read(ctx, func(st *state) {
		for k, d := range st.docs {
			if k.kind == c.kind {
				docs = append(docs, d)
			}
		}
	})
	sort.Slice(docs, func(i, j int) bool { return docs[i].seq > docs[j].seq })

	out := make([]*T, 0, len(docs))
	for _, d := range docs {
		e, err := c.decode(d.body)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *Collection[T]) decode(body []byte) (*T, error) {
	e := new(T)
	if err := json.Unmarshal(body, e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.kind, err)
	}
	return e, nil
}
