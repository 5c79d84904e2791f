package rest

import (
	"net/http"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Aggregate *AggregateHandler
	Activity  *ActivityHandler
	Deck      *DeckHandler
	Answer    *AnswerHandler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Owned entities.
	mux.HandleFunc("POST /users/{id}/decks", h.Aggregate.CreateDeck)
	mux.HandleFunc("POST /users/{id}/answers", h.Aggregate.CreateAnswer)
	mux.HandleFunc("POST /decks/{id}/cards", h.Aggregate.CreateCard)
	mux.HandleFunc("PUT /decks/{id}/cards", h.Aggregate.ReplaceCards)
	mux.HandleFunc("POST /answers/{id}/comments", h.Aggregate.CreateComment)
	mux.HandleFunc("POST /comments/{id}/replies", h.Aggregate.CreateReply)
	mux.HandleFunc("DELETE /decks/{id}", h.Aggregate.Delete(domain.KindDeck))
	mux.HandleFunc("DELETE /cards/{id}", h.Aggregate.Delete(domain.KindCard))
	mux.HandleFunc("DELETE /answers/{id}", h.Aggregate.Delete(domain.KindAnswer))
	mux.HandleFunc("DELETE /comments/{id}", h.Aggregate.Delete(domain.KindComment))
	mux.HandleFunc("DELETE /replies/{id}", h.Aggregate.Delete(domain.KindReply))

	// Activity.
	mux.HandleFunc("PUT /likes", h.Activity.SetLiked)
	mux.HandleFunc("POST /users/{id}/views", h.Activity.RecordView)
	mux.HandleFunc("POST /users/{id}/answer-events", h.Activity.RecordAnswerEvent)
	mux.HandleFunc("POST /users/{id}/logins", h.Activity.RecordLogin)
	mux.HandleFunc("POST /users/{id}/usage", h.Activity.IncreaseUsage)
	mux.HandleFunc("POST /users/{id}/score", h.Activity.IncreaseScore)

	// Decks.
	mux.HandleFunc("GET /decks", h.Deck.List)
	mux.HandleFunc("GET /decks/{id}", h.Deck.Get)
	mux.HandleFunc("PUT /decks/{id}/name", h.Deck.Rename)
	mux.HandleFunc("PUT /decks/{id}/visibility", h.Deck.ChangeVisibility)
	mux.HandleFunc("PUT /decks/{id}/shares/{userId}", h.Deck.Share)
	mux.HandleFunc("DELETE /decks/{id}/shares/{userId}", h.Deck.Unshare)

	// Answers.
	mux.HandleFunc("GET /answers", h.Answer.List)
	mux.HandleFunc("GET /answers/{id}", h.Answer.Get)
	mux.HandleFunc("PUT /answers/{id}/title", h.Answer.EditTitle)
	mux.HandleFunc("PUT /answers/{id}/description", h.Answer.EditDescription)
	mux.HandleFunc("POST /answers/{id}/answered", h.Answer.SetAnswered)
	mux.HandleFunc("PUT /answers/{id}/tags", h.Answer.SetTags)
	mux.HandleFunc("PUT /comments/{id}", h.Answer.EditComment)
	mux.HandleFunc("PUT /replies/{id}", h.Answer.EditReply)
	mux.HandleFunc("PUT /users/{id}/tags", h.Answer.SetUserTags)

	return mux
}
