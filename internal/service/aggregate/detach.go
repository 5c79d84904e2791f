package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Detach deletes the entity and its whole subtree (Deck→Cards,
// Answer→Comments→Replies) and removes its id from the owner. Detaching an
// id that does not exist fails with a NotFoundError; ids are never reused.
func (s *Service) Detach(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var detach func(ctx context.Context, id uuid.UUID) (int, error)
	switch kind {
	case domain.KindDeck:
		detach = s.detachDeck
	case domain.KindCard:
		detach = s.detachCard
	case domain.KindAnswer:
		detach = s.detachAnswer
	case domain.KindComment:
		detach = func(ctx context.Context, id uuid.UUID) (int, error) { return s.detachComment(ctx, id, true) }
	case domain.KindReply:
		detach = s.detachReply
	default:
		return domain.NewValidationError("kind", "not detachable")
	}

	var removed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var detachErr error
		removed, detachErr = detach(txCtx, id)
		return detachErr
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entity detached",
		slog.String("kind", kind.String()),
		slog.String("id", id.String()),
		slog.Int("removed", removed),
	)

	return nil
}

func (s *Service) detachDeck(ctx context.Context, id uuid.UUID) (int, error) {
	found, err := s.decks.Lookup(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get deck: %w", err)
	}

	user, err := s.users.Get(ctx, found.AuthorID)
	if err != nil {
		return 0, fmt.Errorf("get author: %w", err)
	}
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get deck: %w", err)
	}

	removed, err := s.dropCards(ctx, deck.CardIDs)
	if err != nil {
		return 0, err
	}

	user.DeckIDs.Remove(id)
	if err := s.users.Put(ctx, user); err != nil {
		return 0, fmt.Errorf("put author: %w", err)
	}

	if err := s.decks.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete deck: %w", err)
	}
	return removed + 1, nil
}

func (s *Service) detachCard(ctx context.Context, id uuid.UUID) (int, error) {
	card, err := s.cards.Lookup(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get card: %w", err)
	}

	deck, err := s.decks.Get(ctx, card.DeckID)
	if err != nil {
		return 0, fmt.Errorf("get deck: %w", err)
	}
	deck.RemoveCard(id)
	deck.UpdatedAt = s.now().UTC()
	if err := s.decks.Put(ctx, deck); err != nil {
		return 0, fmt.Errorf("put deck: %w", err)
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete card: %w", err)
	}
	return 1, nil
}

func (s *Service) detachAnswer(ctx context.Context, id uuid.UUID) (int, error) {
	found, err := s.answers.Lookup(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get answer: %w", err)
	}

	user, err := s.users.Get(ctx, found.UserID)
	if err != nil {
		return 0, fmt.Errorf("get author: %w", err)
	}
	answer, err := s.answers.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get answer: %w", err)
	}

	removed := 0
	for _, commentID := range answer.CommentIDs {
		n, err := s.detachComment(ctx, commentID, false)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return 0, err
		}
		removed += n
	}

	user.AnswerIDs.Remove(id)
	if err := s.users.Put(ctx, user); err != nil {
		return 0, fmt.Errorf("put author: %w", err)
	}

	if err := s.answers.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete answer: %w", err)
	}
	return removed + 1, nil
}

// detachComment removes a comment and its replies. unlink is false when the
// owning answer is itself being deleted and already locked by the caller.
func (s *Service) detachComment(ctx context.Context, id uuid.UUID, unlink bool) (int, error) {
	var answer *domain.Answer
	if unlink {
		found, err := s.comments.Lookup(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("get comment: %w", err)
		}
		answer, err = s.answers.Get(ctx, found.AnswerID)
		if err != nil {
			return 0, fmt.Errorf("get answer: %w", err)
		}
	}

	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get comment: %w", err)
	}

	removed := 0
	for _, replyID := range comment.ReplyIDs {
		n, err := dropDescendant(s.replies.Delete(ctx, replyID))
		if err != nil {
			return 0, fmt.Errorf("delete reply: %w", err)
		}
		removed += n
	}

	if answer != nil {
		answer.RemoveComment(id)
		if err := s.answers.Put(ctx, answer); err != nil {
			return 0, fmt.Errorf("put answer: %w", err)
		}
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete comment: %w", err)
	}
	return removed + 1, nil
}

func (s *Service) detachReply(ctx context.Context, id uuid.UUID) (int, error) {
	reply, err := s.replies.Lookup(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get reply: %w", err)
	}

	comment, err := s.comments.Get(ctx, reply.CommentID)
	if err != nil {
		return 0, fmt.Errorf("get comment: %w", err)
	}
	comment.RemoveReply(id)
	if err := s.comments.Put(ctx, comment); err != nil {
		return 0, fmt.Errorf("put comment: %w", err)
	}

	if err := s.replies.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete reply: %w", err)
	}
	return 1, nil
}

func (s *Service) dropCards(ctx context.Context, ids []uuid.UUID) (int, error) {
	removed := 0
	for _, cardID := range ids {
		n, err := dropDescendant(s.cards.Delete(ctx, cardID))
		if err != nil {
			return 0, fmt.Errorf("delete card: %w", err)
		}
		removed += n
	}
	return removed, nil
}

// dropDescendant interprets the result of deleting a child whose owner goes
// away in the same transaction. A child that is already gone counts as 0.
func dropDescendant(err error) (int, error) {
	switch {
	case err == nil:
		return 1, nil
	case errors.Is(err, domain.ErrNotFound):
		return 0, nil
	default:
		return 0, err
	}
}
