package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Attach creates the child described by spec under ownerID and records the
// child's id on the owner. Both writes commit together or not at all.
func (s *Service) Attach(ctx context.Context, ownerID uuid.UUID, spec ChildSpec) (uuid.UUID, error) {
	spec = derefSpec(spec)
	if err := validateSpec(ownerID, spec, s.rules); err != nil {
		return uuid.Nil, err
	}

	var childID uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var attachErr error
		switch sp := spec.(type) {
		case DeckSpec:
			childID, attachErr = s.attachDeck(txCtx, ownerID, sp)
		case CardSpec:
			childID, attachErr = s.attachCard(txCtx, ownerID, sp)
		case AnswerSpec:
			childID, attachErr = s.attachAnswer(txCtx, ownerID, sp)
		case CommentSpec:
			childID, attachErr = s.attachComment(txCtx, ownerID, sp)
		case ReplySpec:
			childID, attachErr = s.attachReply(txCtx, ownerID, sp)
		default:
			attachErr = domain.NewValidationError("spec", fmt.Sprintf("unsupported child spec %T", spec))
		}
		return attachErr
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "child attached",
		slog.String("kind", spec.ChildKind().String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("child_id", childID.String()),
	)

	return childID, nil
}

func (s *Service) attachDeck(ctx context.Context, userID uuid.UUID, spec DeckSpec) (uuid.UUID, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get user: %w", err)
	}
	if !user.Enabled {
		return uuid.Nil, domain.NewForbiddenError("user not enabled")
	}

	now := s.now().UTC()
	deck := &domain.Deck{
		ID:         uuid.New(),
		AuthorID:   userID,
		Name:       strings.TrimSpace(spec.Name),
		Visibility: spec.Visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, cs := range spec.Cards {
		card := newCard(deck.ID, cs)
		if err := s.cards.Put(ctx, card); err != nil {
			return uuid.Nil, fmt.Errorf("put card: %w", err)
		}
		deck.CardIDs = append(deck.CardIDs, card.ID)
	}

	if err := s.decks.Put(ctx, deck); err != nil {
		return uuid.Nil, fmt.Errorf("put deck: %w", err)
	}

	user.DeckIDs.Add(deck.ID)
	if err := s.users.Put(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("put user: %w", err)
	}

	return deck.ID, nil
}

func (s *Service) attachCard(ctx context.Context, deckID uuid.UUID, spec CardSpec) (uuid.UUID, error) {
	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get deck: %w", err)
	}

	card := newCard(deckID, spec)
	if err := s.cards.Put(ctx, card); err != nil {
		return uuid.Nil, fmt.Errorf("put card: %w", err)
	}

	deck.CardIDs = append(deck.CardIDs, card.ID)
	deck.UpdatedAt = s.now().UTC()
	if err := s.decks.Put(ctx, deck); err != nil {
		return uuid.Nil, fmt.Errorf("put deck: %w", err)
	}

	return card.ID, nil
}

func (s *Service) attachAnswer(ctx context.Context, userID uuid.UUID, spec AnswerSpec) (uuid.UUID, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get user: %w", err)
	}
	if !user.Enabled {
		return uuid.Nil, domain.NewForbiddenError("user not enabled")
	}

	answer := &domain.Answer{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(spec.Title),
		Description: spec.Description,
		Tags:        slices.Clone(spec.Tags),
		LastUpdated: s.now().UTC(),
	}
	if err := s.answers.Put(ctx, answer); err != nil {
		return uuid.Nil, fmt.Errorf("put answer: %w", err)
	}

	user.AnswerIDs.Add(answer.ID)
	if err := s.users.Put(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("put user: %w", err)
	}

	return answer.ID, nil
}

func (s *Service) attachComment(ctx context.Context, answerID uuid.UUID, spec CommentSpec) (uuid.UUID, error) {
	answer, err := s.answers.Get(ctx, answerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get answer: %w", err)
	}
	if _, err := s.users.Lookup(ctx, spec.ActorID); err != nil {
		return uuid.Nil, fmt.Errorf("get actor: %w", err)
	}

	comment := &domain.Comment{
		ID:          uuid.New(),
		AnswerID:    answerID,
		UserID:      spec.ActorID,
		Description: spec.Description,
	}
	if err := s.comments.Put(ctx, comment); err != nil {
		return uuid.Nil, fmt.Errorf("put comment: %w", err)
	}

	answer.CommentIDs = append(answer.CommentIDs, comment.ID)
	answer.LastUpdated = s.now().UTC()
	if err := s.answers.Put(ctx, answer); err != nil {
		return uuid.Nil, fmt.Errorf("put answer: %w", err)
	}

	return comment.ID, nil
}

func (s *Service) attachReply(ctx context.Context, commentID uuid.UUID, spec ReplySpec) (uuid.UUID, error) {
	comment, err := s.comments.Get(ctx, commentID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get comment: %w", err)
	}
	if _, err := s.users.Lookup(ctx, spec.ActorID); err != nil {
		return uuid.Nil, fmt.Errorf("get actor: %w", err)
	}

	reply := &domain.Reply{
		ID:        uuid.New(),
		CommentID: commentID,
		UserID:    spec.ActorID,
		Text:      spec.Text,
	}
	if err := s.replies.Put(ctx, reply); err != nil {
		return uuid.Nil, fmt.Errorf("put reply: %w", err)
	}

	comment.ReplyIDs = append(comment.ReplyIDs, reply.ID)
	if err := s.comments.Put(ctx, comment); err != nil {
		return uuid.Nil, fmt.Errorf("put comment: %w", err)
	}

	return reply.ID, nil
}

func newCard(deckID uuid.UUID, spec CardSpec) *domain.Card {
	return &domain.Card{
		ID:          uuid.New(),
		DeckID:      deckID,
		Term:        strings.TrimSpace(spec.Term),
		Definitions: slices.Clone(spec.Definitions),
	}
}
