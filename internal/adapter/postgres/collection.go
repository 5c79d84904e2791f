package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

const entitiesTable = "entities"

// builder returns a squirrel statement builder using $N placeholders.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Collection stores entities of one kind as JSONB documents in the
// entities table. Reads made inside a transaction lock the row.
type Collection[T domain.Entity] struct {
	q    Querier
	kind domain.Kind
	now  func() time.Time
}

// NewCollection creates a Collection over q. q is used whenever the context
// carries no transaction.
func NewCollection[T domain.Entity](q Querier) *Collection[T] {
	var zero T
	return &Collection[T]{q: q, kind: zero.EntityKind(), now: time.Now}
}

// Get loads the entity with the given id. Inside a transaction the row is
// locked FOR UPDATE until commit; use it for rows the transaction writes.
func (c *Collection[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	_, inTx := txFromCtx(ctx)
	return c.selectOne(ctx, id, inTx)
}

// Lookup loads the entity with the given id without locking the row, even
// inside a transaction. It serves existence checks and owner discovery.
func (c *Collection[T]) Lookup(ctx context.Context, id uuid.UUID) (*T, error) {
	return c.selectOne(ctx, id, false)
}

func (c *Collection[T]) selectOne(ctx context.Context, id uuid.UUID, lock bool) (*T, error) {
	query := builder().
		Select("body").
		From(entitiesTable).
		Where(sq.And{sq.Eq{"kind": c.kind.String()}, sq.Eq{"id": id.String()}})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", c.kind, err)
	}

	var body []byte
	if err := QuerierFromCtx(ctx, c.q).QueryRow(ctx, sql, args...).Scan(&body); err != nil {
		return nil, mapError(err, c.kind, id)
	}

	return c.decode(body)
}

// Put inserts e or replaces the stored document with the same id.
func (c *Collection[T]) Put(ctx context.Context, e *T) error {
	id := (*e).EntityID()
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", c.kind, id, err)
	}

	now := c.now().UTC()
	sql, args, err := builder().
		Insert(entitiesTable).
		Columns("kind", "id", "body", "created_at", "updated_at").
		Values(c.kind.String(), id.String(), body, now, now).
		Suffix("ON CONFLICT (kind, id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s upsert: %w", c.kind, err)
	}

	if _, err := QuerierFromCtx(ctx, c.q).Exec(ctx, sql, args...); err != nil {
		return mapError(err, c.kind, id)
	}
	return nil
}

// Delete removes the entity with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := builder().
		Delete(entitiesTable).
		Where(sq.And{sq.Eq{"kind": c.kind.String()}, sq.Eq{"id": id.String()}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", c.kind, err)
	}

	tag, err := QuerierFromCtx(ctx, c.q).Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, c.kind, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(c.kind, id)
	}
	return nil
}

// List returns every entity of the kind, most recently written first.
func (c *Collection[T]) List(ctx context.Context) ([]*T, error) {
	sql, args, err := builder().
		Select("body").
		From(entitiesTable).
		Where(sq.Eq{"kind": c.kind.String()}).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s list: %w", c.kind, err)
	}

	rows, err := QuerierFromCtx(ctx, c.q).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.kind, err)
		}
		e, err := c.decode(body)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
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
