package like

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// SetLiked makes the actor like (Liked=true) or stop liking the target.
// Repeating a call is a no-op that reports Changed=false.
//
// Deck likes require an enabled actor. Answer and comment likes do not.
// An answer's last-updated time moves only when membership changed.
func (s *Service) SetLiked(ctx context.Context, input SetLikedInput) (LikeResult, error) {
	if err := input.Validate(); err != nil {
		return LikeResult{}, err
	}

	var result LikeResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		actor, err := s.users.Get(txCtx, input.ActorID)
		if err != nil {
			return fmt.Errorf("get actor: %w", err)
		}

		switch input.Kind {
		case domain.KindDeck:
			result, err = s.toggleDeck(txCtx, actor, input)
		case domain.KindAnswer:
			result, err = s.toggleAnswer(txCtx, actor, input)
		case domain.KindComment:
			result, err = s.toggleComment(txCtx, actor, input)
		}
		if err != nil {
			return err
		}

		if !result.Changed {
			return nil
		}
		if err := s.users.Put(txCtx, actor); err != nil {
			return fmt.Errorf("put actor: %w", err)
		}
		return nil
	})
	if err != nil {
		return LikeResult{}, err
	}

	s.log.InfoContext(ctx, "like set",
		slog.String("actor_id", input.ActorID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("target_id", input.TargetID.String()),
		slog.Bool("liked", input.Liked),
		slog.Bool("changed", result.Changed),
		slog.Int("count", result.Count),
	)

	return result, nil
}

func (s *Service) toggleDeck(ctx context.Context, actor *domain.User, input SetLikedInput) (LikeResult, error) {
	deck, err := s.decks.Get(ctx, input.TargetID)
	if err != nil {
		return LikeResult{}, fmt.Errorf("get deck: %w", err)
	}
	if !actor.Enabled {
		return LikeResult{}, domain.NewForbiddenError("user not enabled")
	}

	changed := apply(&deck.LikedBy, actor.LikedIDs(domain.KindDeck), actor.ID, deck.ID, input.Liked)
	if changed {
		if err := s.decks.Put(ctx, deck); err != nil {
			return LikeResult{}, fmt.Errorf("put deck: %w", err)
		}
	}
	return LikeResult{Count: deck.Likes(), Changed: changed}, nil
}

func (s *Service) toggleAnswer(ctx context.Context, actor *domain.User, input SetLikedInput) (LikeResult, error) {
	answer, err := s.answers.Get(ctx, input.TargetID)
	if err != nil {
		return LikeResult{}, fmt.Errorf("get answer: %w", err)
	}

	changed := apply(&answer.LikedBy, actor.LikedIDs(domain.KindAnswer), actor.ID, answer.ID, input.Liked)
	if changed {
		answer.LastUpdated = s.now().UTC()
		if err := s.answers.Put(ctx, answer); err != nil {
			return LikeResult{}, fmt.Errorf("put answer: %w", err)
		}
	}
	return LikeResult{Count: answer.Likes(), Changed: changed}, nil
}

func (s *Service) toggleComment(ctx context.Context, actor *domain.User, input SetLikedInput) (LikeResult, error) {
	comment, err := s.comments.Get(ctx, input.TargetID)
	if err != nil {
		return LikeResult{}, fmt.Errorf("get comment: %w", err)
	}

	changed := apply(&comment.LikedBy, actor.LikedIDs(domain.KindComment), actor.ID, comment.ID, input.Liked)
	if changed {
		if err := s.comments.Put(ctx, comment); err != nil {
			return LikeResult{}, fmt.Errorf("put comment: %w", err)
		}
	}
	return LikeResult{Count: comment.Likes(), Changed: changed}, nil
}

// apply adds or removes the relation on both sides and reports whether
// either side changed.
func apply(likedBy, liked *domain.IDSet, actorID, targetID uuid.UUID, on bool) bool {
	if on {
		a := likedBy.Add(actorID)
		b := liked.Add(targetID)
		return a || b
	}
	a := likedBy.Remove(actorID)
	b := liked.Remove(targetID)
	return a || b
}
