package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/store"
)

// NewSet wires a TxManager and one Collection per entity kind over pool.
func NewSet(pool *pgxpool.Pool) store.Set {
	return store.Set{
		Tx:         NewTxManager(pool),
		Users:      NewCollection[domain.User](pool),
		Statistics: NewCollection[domain.Statistics](pool),
		Decks:      NewCollection[domain.Deck](pool),
		Cards:      NewCollection[domain.Card](pool),
		Answers:    NewCollection[domain.Answer](pool),
		Comments:   NewCollection[domain.Comment](pool),
		Replies:    NewCollection[domain.Reply](pool),
	}
}
