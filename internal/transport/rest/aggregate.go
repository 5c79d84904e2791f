package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/aggregate"
)

type aggregateService interface {
	Attach(ctx context.Context, ownerID uuid.UUID, spec aggregate.ChildSpec) (uuid.UUID, error)
	Detach(ctx context.Context, kind domain.Kind, id uuid.UUID) error
	ReplaceCards(ctx context.Context, deckID uuid.UUID, cards []aggregate.CardSpec) ([]uuid.UUID, error)
}

// AggregateHandler creates and deletes owned entities.
type AggregateHandler struct {
	svc aggregateService
	log *slog.Logger
}

// NewAggregateHandler creates an AggregateHandler.
func NewAggregateHandler(svc aggregateService, logger *slog.Logger) *AggregateHandler {
	return &AggregateHandler{svc: svc, log: logger.With("handler", "aggregate")}
}

type cardRequest struct {
	Term        string   `json:"term"`
	Definitions []string `json:"definitions"`
}

func (c cardRequest) spec() aggregate.CardSpec {
	return aggregate.CardSpec{Term: c.Term, Definitions: c.Definitions}
}

func cardSpecs(cards []cardRequest) []aggregate.CardSpec {
	specs := make([]aggregate.CardSpec, len(cards))
	for i, c := range cards {
		specs[i] = c.spec()
	}
	return specs
}

type createDeckRequest struct {
	Name       string            `json:"name"`
	Visibility domain.Visibility `json:"visibility"`
	Cards      []cardRequest     `json:"cards"`
}

type replaceCardsRequest struct {
	Cards []cardRequest `json:"cards"`
}

type replaceCardsResponse struct {
	CardIDs []uuid.UUID `json:"cardIds"`
}

type createAnswerRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        []int  `json:"tags"`
}

type createCommentRequest struct {
	ActorID     uuid.UUID `json:"actorId"`
	Description string    `json:"description"`
}

type createReplyRequest struct {
	ActorID uuid.UUID `json:"actorId"`
	Text    string    `json:"text"`
}

// CreateDeck handles POST /users/{id}/decks.
func (h *AggregateHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.attach(w, r, aggregate.DeckSpec{
		Name:       req.Name,
		Visibility: req.Visibility,
		Cards:      cardSpecs(req.Cards),
	})
}

// CreateCard handles POST /decks/{id}/cards.
func (h *AggregateHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.attach(w, r, req.spec())
}

// CreateAnswer handles POST /users/{id}/answers.
func (h *AggregateHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	var req createAnswerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.attach(w, r, aggregate.AnswerSpec{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
}

// CreateComment handles POST /answers/{id}/comments.
func (h *AggregateHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.attach(w, r, aggregate.CommentSpec{ActorID: req.ActorID, Description: req.Description})
}

// CreateReply handles POST /comments/{id}/replies.
func (h *AggregateHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	var req createReplyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.attach(w, r, aggregate.ReplySpec{ActorID: req.ActorID, Text: req.Text})
}

// ReplaceCards handles PUT /decks/{id}/cards.
func (h *AggregateHandler) ReplaceCards(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req replaceCardsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ids, err := h.svc.ReplaceCards(r.Context(), deckID, cardSpecs(req.Cards))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, replaceCardsResponse{CardIDs: ids})
}

// Delete returns the handler for DELETE on entities of kind.
func (h *AggregateHandler) Delete(kind domain.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := h.svc.Detach(r.Context(), kind, id); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AggregateHandler) attach(w http.ResponseWriter, r *http.Request, spec aggregate.ChildSpec) {
	ownerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	id, err := h.svc.Attach(r.Context(), ownerID, spec)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}
