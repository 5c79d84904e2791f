package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/aggregate"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/like"
)

type aggregateServiceMock struct {
	AttachFunc       func(ctx context.Context, ownerID uuid.UUID, spec aggregate.ChildSpec) (uuid.UUID, error)
	DetachFunc       func(ctx context.Context, kind domain.Kind, id uuid.UUID) error
	ReplaceCardsFunc func(ctx context.Context, deckID uuid.UUID, cards []aggregate.CardSpec) ([]uuid.UUID, error)

	attachCalls []aggregate.ChildSpec
	detachCalls []domain.Kind
}

func (m *aggregateServiceMock) Attach(ctx context.Context, ownerID uuid.UUID, spec aggregate.ChildSpec) (uuid.UUID, error) {
	m.attachCalls = append(m.attachCalls, spec)
	return m.AttachFunc(ctx, ownerID, spec)
}

func (m *aggregateServiceMock) Detach(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	m.detachCalls = append(m.detachCalls, kind)
	return m.DetachFunc(ctx, kind, id)
}

func (m *aggregateServiceMock) ReplaceCards(ctx context.Context, deckID uuid.UUID, cards []aggregate.CardSpec) ([]uuid.UUID, error) {
	return m.ReplaceCardsFunc(ctx, deckID, cards)
}

type likeServiceMock struct {
	SetLikedFunc func(ctx context.Context, input like.SetLikedInput) (like.LikeResult, error)
}

func (m *likeServiceMock) SetLiked(ctx context.Context, input like.SetLikedInput) (like.LikeResult, error) {
	return m.SetLikedFunc(ctx, input)
}

type recencyServiceMock struct {
	RecordViewFunc func(ctx context.Context, userID, deckID uuid.UUID) ([]uuid.UUID, error)
}

func (m *recencyServiceMock) RecordView(ctx context.Context, userID, deckID uuid.UUID) ([]uuid.UUID, error) {
	return m.RecordViewFunc(ctx, userID, deckID)
}

type statsServiceMock struct {
	RecordAnswerEventFunc func(ctx context.Context, userID, cardID uuid.UUID, correct bool) (domain.CardStatistics, error)
	RecordLoginFunc       func(ctx context.Context, userID uuid.UUID) (int, error)
	IncreaseUsageTimeFunc func(ctx context.Context, userID uuid.UUID, d time.Duration) (time.Duration, error)
	IncreaseScoreFunc     func(ctx context.Context, userID uuid.UUID, delta int) (int, error)
}

func (m *statsServiceMock) RecordAnswerEvent(ctx context.Context, userID, cardID uuid.UUID, correct bool) (domain.CardStatistics, error) {
	return m.RecordAnswerEventFunc(ctx, userID, cardID, correct)
}

func (m *statsServiceMock) RecordLogin(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.RecordLoginFunc(ctx, userID)
}

func (m *statsServiceMock) IncreaseUsageTime(ctx context.Context, userID uuid.UUID, d time.Duration) (time.Duration, error) {
	return m.IncreaseUsageTimeFunc(ctx, userID, d)
}

func (m *statsServiceMock) IncreaseScore(ctx context.Context, userID uuid.UUID, delta int) (int, error) {
	return m.IncreaseScoreFunc(ctx, userID, delta)
}

type deckServiceMock struct {
	GetFunc              func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListFunc             func(ctx context.Context) ([]*domain.Deck, error)
	SearchByNameFunc     func(ctx context.Context, q string) ([]*domain.Deck, error)
	RenameFunc           func(ctx context.Context, id uuid.UUID, name string) (*domain.Deck, error)
	ChangeVisibilityFunc func(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Deck, error)
	ShareFunc            func(ctx context.Context, deckID, recipientID uuid.UUID) (*domain.Deck, error)
	UnshareFunc          func(ctx context.Context, deckID, recipientID uuid.UUID) error
}

func (m *deckServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	return m.GetFunc(ctx, id)
}

func (m *deckServiceMock) List(ctx context.Context) ([]*domain.Deck, error) {
	return m.ListFunc(ctx)
}

func (m *deckServiceMock) SearchByName(ctx context.Context, q string) ([]*domain.Deck, error) {
	return m.SearchByNameFunc(ctx, q)
}

func (m *deckServiceMock) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Deck, error) {
	return m.RenameFunc(ctx, id, name)
}

func (m *deckServiceMock) ChangeVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Deck, error) {
	return m.ChangeVisibilityFunc(ctx, id, v)
}

func (m *deckServiceMock) Share(ctx context.Context, deckID, recipientID uuid.UUID) (*domain.Deck, error) {
	return m.ShareFunc(ctx, deckID, recipientID)
}

func (m *deckServiceMock) Unshare(ctx context.Context, deckID, recipientID uuid.UUID) error {
	return m.UnshareFunc(ctx, deckID, recipientID)
}

type answerServiceMock struct {
	GetFunc             func(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	SearchByTitleFunc   func(ctx context.Context, q string) ([]*domain.Answer, error)
	FeedFunc            func(ctx context.Context) ([]*domain.Answer, error)
	EditTitleFunc       func(ctx context.Context, answerID uuid.UUID, title string) (*domain.Answer, error)
	EditDescriptionFunc func(ctx context.Context, answerID uuid.UUID, description string) (*domain.Answer, error)
	SetAnsweredFunc     func(ctx context.Context, answerID uuid.UUID) (*domain.Answer, error)
	SetTagsFunc         func(ctx context.Context, answerID uuid.UUID, tags []int) (*domain.Answer, error)
	EditCommentFunc     func(ctx context.Context, commentID uuid.UUID, description string) (*domain.Comment, error)
	EditReplyFunc       func(ctx context.Context, replyID uuid.UUID, text string) (*domain.Reply, error)
	SetUserTagsFunc     func(ctx context.Context, userID uuid.UUID, tags []int) (*domain.User, error)
}

func (m *answerServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	return m.GetFunc(ctx, id)
}

func (m *answerServiceMock) SearchByTitle(ctx context.Context, q string) ([]*domain.Answer, error) {
	return m.SearchByTitleFunc(ctx, q)
}

func (m *answerServiceMock) Feed(ctx context.Context) ([]*domain.Answer, error) {
	return m.FeedFunc(ctx)
}

func (m *answerServiceMock) EditTitle(ctx context.Context, answerID uuid.UUID, title string) (*domain.Answer, error) {
	return m.EditTitleFunc(ctx, answerID, title)
}

func (m *answerServiceMock) EditDescription(ctx context.Context, answerID uuid.UUID, description string) (*domain.Answer, error) {
	return m.EditDescriptionFunc(ctx, answerID, description)
}

func (m *answerServiceMock) SetAnswered(ctx context.Context, answerID uuid.UUID) (*domain.Answer, error) {
	return m.SetAnsweredFunc(ctx, answerID)
}

func (m *answerServiceMock) SetTags(ctx context.Context, answerID uuid.UUID, tags []int) (*domain.Answer, error) {
	return m.SetTagsFunc(ctx, answerID, tags)
}

func (m *answerServiceMock) EditComment(ctx context.Context, commentID uuid.UUID, description string) (*domain.Comment, error) {
	return m.EditCommentFunc(ctx, commentID, description)
}

func (m *answerServiceMock) EditReply(ctx context.Context, replyID uuid.UUID, text string) (*domain.Reply, error) {
	return m.EditReplyFunc(ctx, replyID, text)
}

func (m *answerServiceMock) SetUserTags(ctx context.Context, userID uuid.UUID, tags []int) (*domain.User, error) {
	return m.SetUserTagsFunc(ctx, userID, tags)
}
