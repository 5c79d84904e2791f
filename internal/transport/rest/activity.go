package rest

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/like"
)

type likeService interface {
	SetLiked(ctx context.Context, input like.SetLikedInput) (like.LikeResult, error)
}

type recencyService interface {
	RecordView(ctx context.Context, userID, deckID uuid.UUID) ([]uuid.UUID, error)
}

type statsService interface {
	RecordAnswerEvent(ctx context.Context, userID, cardID uuid.UUID, correct bool) (domain.CardStatistics, error)
	RecordLogin(ctx context.Context, userID uuid.UUID) (int, error)
	IncreaseUsageTime(ctx context.Context, userID uuid.UUID, d time.Duration) (time.Duration, error)
	IncreaseScore(ctx context.Context, userID uuid.UUID, delta int) (int, error)
}

// ActivityHandler serves the per-user activity endpoints: likes, deck
// views and study statistics.
type ActivityHandler struct {
	likes   likeService
	recency recencyService
	stats   statsService
	log     *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(likes likeService, recency recencyService, stats statsService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		likes:   likes,
		recency: recency,
		stats:   stats,
		log:     logger.With("handler", "activity"),
	}
}

type setLikedRequest struct {
	ActorID  uuid.UUID   `json:"actorId"`
	TargetID uuid.UUID   `json:"targetId"`
	Kind     domain.Kind `json:"kind"`
	Liked    bool        `json:"liked"`
}

type setLikedResponse struct {
	Count   int  `json:"count"`
	Changed bool `json:"changed"`
}

type recordViewRequest struct {
	DeckID uuid.UUID `json:"deckId"`
}

type recordViewResponse struct {
	RecentlyViewed []uuid.UUID `json:"recentlyViewed"`
}

type answerEventRequest struct {
	CardID  uuid.UUID `json:"cardId"`
	Correct bool      `json:"correct"`
}

type usageRequest struct {
	Seconds int64 `json:"seconds"`
}

type usageResponse struct {
	UsageSeconds int64 `json:"usageSeconds"`
}

type scoreRequest struct {
	Delta int `json:"delta"`
}

type scoreResponse struct {
	Score int `json:"score"`
}

type streakResponse struct {
	DayStreak int `json:"dayStreak"`
}

// SetLiked handles PUT /likes.
func (h *ActivityHandler) SetLiked(w http.ResponseWriter, r *http.Request) {
	var req setLikedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.likes.SetLiked(r.Context(), like.SetLikedInput{
		ActorID:  req.ActorID,
		TargetID: req.TargetID,
		Kind:     req.Kind,
		Liked:    req.Liked,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, setLikedResponse{Count: res.Count, Changed: res.Changed})
}

// RecordView handles POST /users/{id}/views.
func (h *ActivityHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req recordViewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ids, err := h.recency.RecordView(r.Context(), userID, req.DeckID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordViewResponse{RecentlyViewed: ids})
}

// RecordAnswerEvent handles POST /users/{id}/answer-events.
func (h *ActivityHandler) RecordAnswerEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req answerEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cs, err := h.stats.RecordAnswerEvent(r.Context(), userID, req.CardID, req.Correct)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

// RecordLogin handles POST /users/{id}/logins.
func (h *ActivityHandler) RecordLogin(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	streak, err := h.stats.RecordLogin(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, streakResponse{DayStreak: streak})
}

// IncreaseUsage handles POST /users/{id}/usage.
func (h *ActivityHandler) IncreaseUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req usageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Seconds > math.MaxInt64/int64(time.Second) {
		writeError(w, http.StatusBadRequest, "seconds out of range")
		return
	}

	total, err := h.stats.IncreaseUsageTime(r.Context(), userID, time.Duration(req.Seconds)*time.Second)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponse{UsageSeconds: int64(total / time.Second)})
}

// IncreaseScore handles POST /users/{id}/score.
func (h *ActivityHandler) IncreaseScore(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req scoreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	score, err := h.stats.IncreaseScore(r.Context(), userID, req.Delta)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{Score: score})
}
