package app

import (
	"log/slog"
	"net/http"

	"github.com/Elephant-Learning/Elephant-Backend/internal/config"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/aggregate"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/answer"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/deck"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/like"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/recency"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/stats"
	"github.com/Elephant-Learning/Elephant-Backend/internal/textrule"
	"github.com/Elephant-Learning/Elephant-Backend/internal/transport/middleware"
	"github.com/Elephant-Learning/Elephant-Backend/internal/transport/rest"
)

// newRouter builds every service over the backend and mounts them on the
// REST router.
func newRouter(b *backend, limits config.Tunables, logger *slog.Logger) *http.ServeMux {
	set := b.set
	rules := textrule.New(limits)

	aggregateSvc := aggregate.NewService(logger,
		set.Users, set.Decks, set.Cards, set.Answers, set.Comments, set.Replies,
		set.Tx, rules)
	likeSvc := like.NewService(logger, set.Users, set.Decks, set.Answers, set.Comments, set.Tx)
	recencySvc := recency.NewService(logger, set.Users, set.Decks, set.Statistics, set.Tx, limits.RecentlyViewedDecksMax)
	statsSvc := stats.NewService(logger, set.Users, set.Cards, set.Statistics, set.Tx, limits.MaxUsageIncrement)
	deckSvc := deck.NewService(logger, set.Decks, set.Users, set.Tx, rules)
	answerSvc := answer.NewService(logger,
		set.Answers, set.Comments, set.Replies, set.Users,
		set.Tx, rules, limits.AnswersFeedLimit)

	return rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(b.pinger, b.driver, BuildVersion()),
		Aggregate: rest.NewAggregateHandler(aggregateSvc, logger),
		Activity:  rest.NewActivityHandler(likeSvc, recencySvc, statsSvc, logger),
		Deck:      rest.NewDeckHandler(deckSvc, logger),
		Answer:    rest.NewAnswerHandler(answerSvc, logger),
	})
}

// newHandler wraps the router in the middleware chain. rateLimit may be
// nil when limiting is disabled.
func newHandler(router http.Handler, cfg *config.Config, logger *slog.Logger, rateLimit middleware.Middleware) http.Handler {
	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)(router)
}
