package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

func TestAnswerHandler_List_FeedOrSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantSearch string
	}{
		{"feed", "/answers", ""},
		{"search", "/answers?q=mitosis", "mitosis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fed bool
			var searched string
			svc := &answerServiceMock{
				FeedFunc: func(context.Context) ([]*domain.Answer, error) {
					fed = true
					return []*domain.Answer{{ID: uuid.New()}}, nil
				},
				SearchByTitleFunc: func(_ context.Context, q string) ([]*domain.Answer, error) {
					searched = q
					return []*domain.Answer{}, nil
				},
			}
			h := NewAnswerHandler(svc, discardLogger())

			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if searched != tt.wantSearch {
				t.Errorf("search query = %q, want %q", searched, tt.wantSearch)
			}
			if fed != (tt.wantSearch == "") {
				t.Errorf("fed = %v", fed)
			}
		})
	}
}

func TestAnswerHandler_Get_RendersEmptyCollections(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &answerServiceMock{
		GetFunc: func(context.Context, uuid.UUID) (*domain.Answer, error) {
			return &domain.Answer{ID: id, Title: "Why?", LastUpdated: updated}, nil
		},
	}
	h := NewAnswerHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"tags":[]`, `"commentIds":[]`, `"likes":0`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s missing %s", body, want)
		}
	}
	var resp answerResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.LastUpdated.Equal(updated) {
		t.Errorf("lastUpdated = %v, want %v", resp.LastUpdated, updated)
	}
}

func TestAnswerHandler_EditTitle_ValidationFields(t *testing.T) {
	t.Parallel()

	svc := &answerServiceMock{
		EditTitleFunc: func(context.Context, uuid.UUID, string) (*domain.Answer, error) {
			return nil, domain.NewValidationError("title", "invalid name")
		},
	}
	h := NewAnswerHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"title":""}`))
	req.SetPathValue("id", uuid.NewString())
	rec := httptest.NewRecorder()
	h.EditTitle(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "title" {
		t.Errorf("fields = %+v, want one error on title", resp.Fields)
	}
}

func TestAnswerHandler_SetTags(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var got []int
	svc := &answerServiceMock{
		SetTagsFunc: func(_ context.Context, _ uuid.UUID, tags []int) (*domain.Answer, error) {
			got = tags
			return &domain.Answer{ID: id, Tags: tags}, nil
		},
	}
	h := NewAnswerHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"tags":[3,1,2]}`))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()
	h.SetTags(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("tags = %v, want [3 1 2]", got)
	}
}

func TestAnswerHandler_EditComment(t *testing.T) {
	t.Parallel()

	id, answerID := uuid.New(), uuid.New()
	svc := &answerServiceMock{
		EditCommentFunc: func(_ context.Context, _ uuid.UUID, desc string) (*domain.Comment, error) {
			return &domain.Comment{ID: id, AnswerID: answerID, Description: desc, LikedBy: domain.NewIDSet(uuid.New())}, nil
		},
	}
	h := NewAnswerHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"description":"fixed typo"}`))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()
	h.EditComment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp commentResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Description != "fixed typo" || resp.AnswerID != answerID || resp.Likes != 1 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.ReplyIDs == nil {
		t.Error("replyIds should render as an empty array")
	}
}

func TestAnswerHandler_SetUserTags_NotFound(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &answerServiceMock{
		SetUserTagsFunc: func(context.Context, uuid.UUID, []int) (*domain.User, error) {
			return nil, domain.NewNotFoundError(domain.KindUser, userID)
		},
	}
	h := NewAnswerHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"tags":[1]}`))
	req.SetPathValue("id", userID.String())
	rec := httptest.NewRecorder()
	h.SetUserTags(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
