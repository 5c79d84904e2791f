package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is an ordered collection of cards authored by one user.
type Deck struct {
	ID         uuid.UUID   `json:"id"`
	AuthorID   uuid.UUID   `json:"authorId"`
	Name       string      `json:"name"`
	Visibility Visibility  `json:"visibility"`
	CardIDs    []uuid.UUID `json:"cardIds"`
	LikedBy    IDSet       `json:"likedBy"`
	SharedWith IDSet       `json:"sharedWith"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func (d Deck) EntityKind() Kind    { return KindDeck }
func (d Deck) EntityID() uuid.UUID { return d.ID }

// Likes is the number of distinct users who currently like the deck.
func (d *Deck) Likes() int { return d.LikedBy.Len() }

// RemoveCard drops cardID from the ordered card list.
func (d *Deck) RemoveCard(cardID uuid.UUID) bool {
	var ok bool
	d.CardIDs, ok = removeID(d.CardIDs, cardID)
	return ok
}

// Card is a single term with its definitions. DeckID is the back-reference
// to the owning deck.
type Card struct {
	ID          uuid.UUID `json:"id"`
	DeckID      uuid.UUID `json:"deckId"`
	Term        string    `json:"term"`
	Definitions []string  `json:"definitions"`
}

func (c Card) EntityKind() Kind    { return KindCard }
func (c Card) EntityID() uuid.UUID { return c.ID }
