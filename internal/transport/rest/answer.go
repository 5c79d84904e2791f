package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

type answerService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	SearchByTitle(ctx context.Context, q string) ([]*domain.Answer, error)
	Feed(ctx context.Context) ([]*domain.Answer, error)
	EditTitle(ctx context.Context, answerID uuid.UUID, title string) (*domain.Answer, error)
	EditDescription(ctx context.Context, answerID uuid.UUID, description string) (*domain.Answer, error)
	SetAnswered(ctx context.Context, answerID uuid.UUID) (*domain.Answer, error)
	SetTags(ctx context.Context, answerID uuid.UUID, tags []int) (*domain.Answer, error)
	EditComment(ctx context.Context, commentID uuid.UUID, description string) (*domain.Comment, error)
	EditReply(ctx context.Context, replyID uuid.UUID, text string) (*domain.Reply, error)
	SetUserTags(ctx context.Context, userID uuid.UUID, tags []int) (*domain.User, error)
}

// AnswerHandler serves answer threads: reads, the feed and edits.
type AnswerHandler struct {
	svc answerService
	log *slog.Logger
}

// NewAnswerHandler creates an AnswerHandler.
func NewAnswerHandler(svc answerService, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{svc: svc, log: logger.With("handler", "answer")}
}

type answerResponse struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tags        []int       `json:"tags"`
	Answered    bool        `json:"answered"`
	Likes       int         `json:"likes"`
	CommentIDs  []uuid.UUID `json:"commentIds"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

func toAnswerResponse(a *domain.Answer) answerResponse {
	resp := answerResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		Tags:        a.Tags,
		Answered:    a.Answered,
		Likes:       a.Likes(),
		CommentIDs:  a.CommentIDs,
		LastUpdated: a.LastUpdated,
	}
	if resp.Tags == nil {
		resp.Tags = []int{}
	}
	if resp.CommentIDs == nil {
		resp.CommentIDs = []uuid.UUID{}
	}
	return resp
}

type commentResponse struct {
	ID          uuid.UUID   `json:"id"`
	AnswerID    uuid.UUID   `json:"answerId"`
	UserID      uuid.UUID   `json:"userId"`
	Description string      `json:"description"`
	Likes       int         `json:"likes"`
	ReplyIDs    []uuid.UUID `json:"replyIds"`
}

type userTagsResponse struct {
	UserID uuid.UUID `json:"userId"`
	Tags   []int     `json:"tags"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type descriptionRequest struct {
	Description string `json:"description"`
}

type tagsRequest struct {
	Tags []int `json:"tags"`
}

type textRequest struct {
	Text string `json:"text"`
}

// Get handles GET /answers/{id}.
func (h *AnswerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r)(h.svc.Get(r.Context(), id))
}

// List handles GET /answers: the feed, or a title search with ?q=.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		answers []*domain.Answer
		err     error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		answers, err = h.svc.SearchByTitle(r.Context(), q)
	} else {
		answers, err = h.svc.Feed(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]answerResponse, len(answers))
	for i, a := range answers {
		out[i] = toAnswerResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// EditTitle handles PUT /answers/{id}/title.
func (h *AnswerHandler) EditTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req titleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.EditTitle(r.Context(), id, req.Title))
}

// EditDescription handles PUT /answers/{id}/description.
func (h *AnswerHandler) EditDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req descriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.EditDescription(r.Context(), id, req.Description))
}

// SetAnswered handles POST /answers/{id}/answered.
func (h *AnswerHandler) SetAnswered(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r)(h.svc.SetAnswered(r.Context(), id))
}

// SetTags handles PUT /answers/{id}/tags.
func (h *AnswerHandler) SetTags(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req tagsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.SetTags(r.Context(), id, req.Tags))
}

// EditComment handles PUT /comments/{id}.
func (h *AnswerHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req descriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.EditComment(r.Context(), id, req.Description)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	replyIDs := c.ReplyIDs
	if replyIDs == nil {
		replyIDs = []uuid.UUID{}
	}
	writeJSON(w, http.StatusOK, commentResponse{
		ID:          c.ID,
		AnswerID:    c.AnswerID,
		UserID:      c.UserID,
		Description: c.Description,
		Likes:       c.Likes(),
		ReplyIDs:    replyIDs,
	})
}

// EditReply handles PUT /replies/{id}.
func (h *AnswerHandler) EditReply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reply, err := h.svc.EditReply(r.Context(), id, req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// SetUserTags handles PUT /users/{id}/tags.
func (h *AnswerHandler) SetUserTags(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req tagsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.svc.SetUserTags(r.Context(), id, req.Tags)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	tags := user.Tags
	if tags == nil {
		tags = []int{}
	}
	writeJSON(w, http.StatusOK, userTagsResponse{UserID: user.ID, Tags: tags})
}

func (h *AnswerHandler) respond(w http.ResponseWriter, r *http.Request) func(*domain.Answer, error) {
	return func(a *domain.Answer, err error) {
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnswerResponse(a))
	}
}
