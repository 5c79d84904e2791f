package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer is a question thread posted by a user. Comments hang off it and
// replies hang off comments.
type Answer struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tags        []int       `json:"tags"`
	Answered    bool        `json:"answered"`
	LikedBy     IDSet       `json:"likedBy"`
	CommentIDs  []uuid.UUID `json:"commentIds"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

func (a Answer) EntityKind() Kind    { return KindAnswer }
func (a Answer) EntityID() uuid.UUID { return a.ID }

// Likes is the number of distinct users who currently like the answer.
func (a *Answer) Likes() int { return a.LikedBy.Len() }

// RemoveComment drops commentID from the ordered comment list.
func (a *Answer) RemoveComment(commentID uuid.UUID) bool {
	var ok bool
	a.CommentIDs, ok = removeID(a.CommentIDs, commentID)
	return ok
}

// Comment belongs to exactly one answer and is written by one user.
type Comment struct {
	ID          uuid.UUID   `json:"id"`
	AnswerID    uuid.UUID   `json:"answerId"`
	UserID      uuid.UUID   `json:"userId"`
	Description string      `json:"description"`
	LikedBy     IDSet       `json:"likedBy"`
	ReplyIDs    []uuid.UUID `json:"replyIds"`
}

func (c Comment) EntityKind() Kind    { return KindComment }
func (c Comment) EntityID() uuid.UUID { return c.ID }

// Likes is the number of distinct users who currently like the comment.
func (c *Comment) Likes() int { return c.LikedBy.Len() }

// RemoveReply drops replyID from the ordered reply list.
func (c *Comment) RemoveReply(replyID uuid.UUID) bool {
	var ok bool
	c.ReplyIDs, ok = removeID(c.ReplyIDs, replyID)
	return ok
}

// Reply belongs to exactly one comment.
type Reply struct {
	ID        uuid.UUID `json:"id"`
	CommentID uuid.UUID `json:"commentId"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
}

func (r Reply) EntityKind() Kind    { return KindReply }
func (r Reply) EntityID() uuid.UUID { return r.ID }
