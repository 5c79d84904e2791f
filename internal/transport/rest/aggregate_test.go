package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/service/aggregate"
)

func TestAggregateHandler_CreateDeck(t *testing.T) {
	t.Parallel()

	ownerID, deckID := uuid.New(), uuid.New()
	svc := &aggregateServiceMock{
		AttachFunc: func(_ context.Context, gotOwner uuid.UUID, _ aggregate.ChildSpec) (uuid.UUID, error) {
			if gotOwner != ownerID {
				t.Errorf("owner = %s, want %s", gotOwner, ownerID)
			}
			return deckID, nil
		},
	}
	h := NewAggregateHandler(svc, discardLogger())

	body := `{"name":"Biology","visibility":"PUBLIC","cards":[{"term":"cell","definitions":["unit of life"]}]}`
	req := httptest.NewRequest(http.MethodPost, "/users/"+ownerID.String()+"/decks", strings.NewReader(body))
	req.SetPathValue("id", ownerID.String())
	rec := httptest.NewRecorder()

	h.CreateDeck(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp idResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != deckID {
		t.Errorf("id = %s, want %s", resp.ID, deckID)
	}

	spec, ok := svc.attachCalls[0].(aggregate.DeckSpec)
	if !ok {
		t.Fatalf("spec = %T, want DeckSpec", svc.attachCalls[0])
	}
	if spec.Name != "Biology" || spec.Visibility != domain.VisibilityPublic || len(spec.Cards) != 1 || spec.Cards[0].Term != "cell" {
		t.Errorf("spec = %+v", spec)
	}
}

func TestAggregateHandler_CreateComment_ServiceError(t *testing.T) {
	t.Parallel()

	answerID := uuid.New()
	svc := &aggregateServiceMock{
		AttachFunc: func(context.Context, uuid.UUID, aggregate.ChildSpec) (uuid.UUID, error) {
			return uuid.Nil, domain.NewNotFoundError(domain.KindAnswer, answerID)
		},
	}
	h := NewAggregateHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"actorId":"`+uuid.NewString()+`","description":"hi"}`))
	req.SetPathValue("id", answerID.String())
	rec := httptest.NewRecorder()

	h.CreateComment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if _, ok := svc.attachCalls[0].(aggregate.CommentSpec); !ok {
		t.Errorf("spec = %T, want CommentSpec", svc.attachCalls[0])
	}
}

func TestAggregateHandler_Delete(t *testing.T) {
	t.Parallel()

	svc := &aggregateServiceMock{
		DetachFunc: func(context.Context, domain.Kind, uuid.UUID) error { return nil },
	}
	h := NewAggregateHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.SetPathValue("id", uuid.NewString())
	rec := httptest.NewRecorder()

	h.Delete(domain.KindReply)(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if len(svc.detachCalls) != 1 || svc.detachCalls[0] != domain.KindReply {
		t.Errorf("detach calls = %v", svc.detachCalls)
	}
}

func TestAggregateHandler_BadPathID(t *testing.T) {
	t.Parallel()

	h := NewAggregateHandler(&aggregateServiceMock{}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"term":"x"}`))
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.CreateCard(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
