package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

type deckService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	List(ctx context.Context) ([]*domain.Deck, error)
	SearchByName(ctx context.Context, q string) ([]*domain.Deck, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Deck, error)
	ChangeVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Deck, error)
	Share(ctx context.Context, deckID, recipientID uuid.UUID) (*domain.Deck, error)
	Unshare(ctx context.Context, deckID, recipientID uuid.UUID) error
}

// DeckHandler serves deck reads, renames, visibility and sharing.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type deckResponse struct {
	ID         uuid.UUID         `json:"id"`
	AuthorID   uuid.UUID         `json:"authorId"`
	Name       string            `json:"name"`
	Visibility domain.Visibility `json:"visibility"`
	CardIDs    []uuid.UUID       `json:"cardIds"`
	Likes      int               `json:"likes"`
	SharedWith []uuid.UUID       `json:"sharedWith"`
}

func toDeckResponse(d *domain.Deck) deckResponse {
	cardIDs := d.CardIDs
	if cardIDs == nil {
		cardIDs = []uuid.UUID{}
	}
	return deckResponse{
		ID:         d.ID,
		AuthorID:   d.AuthorID,
		Name:       d.Name,
		Visibility: d.Visibility,
		CardIDs:    cardIDs,
		Likes:      d.Likes(),
		SharedWith: d.SharedWith.Sorted(),
	}
}

func toDeckResponses(decks []*domain.Deck) []deckResponse {
	out := make([]deckResponse, len(decks))
	for i, d := range decks {
		out[i] = toDeckResponse(d)
	}
	return out
}

type renameDeckRequest struct {
	Name string `json:"name"`
}

type visibilityRequest struct {
	Visibility domain.Visibility `json:"visibility"`
}

// Get handles GET /decks/{id}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	deck, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckResponse(deck))
}

// List handles GET /decks. With ?q= it searches non-private decks by name.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		decks []*domain.Deck
		err   error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		decks, err = h.svc.SearchByName(r.Context(), q)
	} else {
		decks, err = h.svc.List(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckResponses(decks))
}

// Rename handles PUT /decks/{id}/name.
func (h *DeckHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req renameDeckRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.Rename(r.Context(), id, req.Name))
}

// ChangeVisibility handles PUT /decks/{id}/visibility.
func (h *DeckHandler) ChangeVisibility(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req visibilityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.ChangeVisibility(r.Context(), id, req.Visibility))
}

// Share handles PUT /decks/{id}/shares/{userId}.
func (h *DeckHandler) Share(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	h.respond(w, r)(h.svc.Share(r.Context(), deckID, userID))
}

// Unshare handles DELETE /decks/{id}/shares/{userId}.
func (h *DeckHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	deckID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	if err := h.svc.Unshare(r.Context(), deckID, userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeckHandler) respond(w http.ResponseWriter, r *http.Request) func(*domain.Deck, error) {
	return func(deck *domain.Deck, err error) {
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toDeckResponse(deck))
	}
}
