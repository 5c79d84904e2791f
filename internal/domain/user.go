package domain

import (
	"github.com/google/uuid"
)

// Entity is implemented by every type held in the entity store.
// Both methods use value receivers so a zero value reports its kind.
type Entity interface {
	EntityKind() Kind
	EntityID() uuid.UUID
}

// User is the root aggregate for everything a person owns. Users are
// registered and enabled by an external collaborator; this service only
// mutates their collections, score and tags.
type User struct {
	ID      uuid.UUID `json:"id"`
	Enabled bool      `json:"enabled"`

	DeckIDs   IDSet `json:"deckIds"`
	AnswerIDs IDSet `json:"answerIds"`

	LikedDeckIDs    IDSet `json:"likedDeckIds"`
	LikedAnswerIDs  IDSet `json:"likedAnswerIds"`
	LikedCommentIDs IDSet `json:"likedCommentIds"`
	SharedDeckIDs   IDSet `json:"sharedDeckIds"`

	Score        int       `json:"score"`
	Tags         []int     `json:"tags"`
	StatisticsID uuid.UUID `json:"statisticsId"`
}

func (u User) EntityKind() Kind    { return KindUser }
func (u User) EntityID() uuid.UUID { return u.ID }

// NewUser returns an enabled user with its statistics record attached.
// Registration itself is external; the constructor exists for seeding
// and tests.
func NewUser(id uuid.UUID) (*User, *Statistics) {
	stats := NewStatistics(uuid.New(), id)
	return &User{
		ID:           id,
		Enabled:      true,
		StatisticsID: stats.ID,
	}, stats
}

// LikedIDs returns the user's liked-id set for a likeable kind, or nil.
func (u *User) LikedIDs(kind Kind) *IDSet {
	switch kind {
	case KindDeck:
		return &u.LikedDeckIDs
	case KindAnswer:
		return &u.LikedAnswerIDs
	case KindComment:
		return &u.LikedCommentIDs
	}
	return nil
}
