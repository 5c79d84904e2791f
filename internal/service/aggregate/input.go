package aggregate

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
	"github.com/Elephant-Learning/Elephant-Backend/internal/textrule"
)

// ChildSpec describes a child to create under an owner.
// Implemented by DeckSpec, CardSpec, AnswerSpec, CommentSpec and ReplySpec.
type ChildSpec interface {
	ChildKind() domain.Kind
	OwnerKind() domain.Kind
	validate(rules *textrule.Rules) []domain.FieldError
}

// DeckSpec creates a deck, and optionally its first cards, for a user.
type DeckSpec struct {
	Name       string
	Visibility domain.Visibility
	Cards      []CardSpec
}

func (DeckSpec) ChildKind() domain.Kind { return domain.KindDeck }
func (DeckSpec) OwnerKind() domain.Kind { return domain.KindUser }

func (s DeckSpec) validate(rules *textrule.Rules) []domain.FieldError {
	var errs []domain.FieldError
	if rules.IsInvalidName(s.Name) {
		errs = append(errs, domain.FieldError{Field: "name", Message: "invalid name"})
	}
	if !s.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}
	errs = append(errs, validateCards(s.Cards)...)
	return errs
}

// CardSpec creates a card in a deck.
type CardSpec struct {
	Term        string
	Definitions []string
}

func (CardSpec) ChildKind() domain.Kind { return domain.KindCard }
func (CardSpec) OwnerKind() domain.Kind { return domain.KindDeck }

func (s CardSpec) validate(*textrule.Rules) []domain.FieldError {
	if strings.TrimSpace(s.Term) == "" {
		return []domain.FieldError{{Field: "term", Message: "required"}}
	}
	return nil
}

func validateCards(cards []CardSpec) []domain.FieldError {
	var errs []domain.FieldError
	for i, c := range cards {
		for _, fe := range c.validate(nil) {
			fe.Field = "cards[" + strconv.Itoa(i) + "]." + fe.Field
			errs = append(errs, fe)
		}
	}
	return errs
}

// AnswerSpec creates an answer thread for a user.
type AnswerSpec struct {
	Title       string
	Description string
	Tags        []int
}

func (AnswerSpec) ChildKind() domain.Kind { return domain.KindAnswer }
func (AnswerSpec) OwnerKind() domain.Kind { return domain.KindUser }

func (s AnswerSpec) validate(rules *textrule.Rules) []domain.FieldError {
	var errs []domain.FieldError
	if rules.IsInvalidName(s.Title) {
		errs = append(errs, domain.FieldError{Field: "title", Message: "invalid name"})
	}
	if msg := rules.TagsProblem(s.Tags); msg != "" {
		errs = append(errs, domain.FieldError{Field: "tags", Message: msg})
	}
	return errs
}

// CommentSpec creates a comment written by ActorID on an answer.
type CommentSpec struct {
	ActorID     uuid.UUID
	Description string
}

func (CommentSpec) ChildKind() domain.Kind { return domain.KindComment }
func (CommentSpec) OwnerKind() domain.Kind { return domain.KindAnswer }

func (s CommentSpec) validate(*textrule.Rules) []domain.FieldError {
	if s.ActorID == uuid.Nil {
		return []domain.FieldError{{Field: "actor_id", Message: "required"}}
	}
	return nil
}

// ReplySpec creates a reply written by ActorID on a comment.
type ReplySpec struct {
	ActorID uuid.UUID
	Text    string
}

func (ReplySpec) ChildKind() domain.Kind { return domain.KindReply }
func (ReplySpec) OwnerKind() domain.Kind { return domain.KindComment }

func (s ReplySpec) validate(*textrule.Rules) []domain.FieldError {
	if s.ActorID == uuid.Nil {
		return []domain.FieldError{{Field: "actor_id", Message: "required"}}
	}
	return nil
}

// derefSpec accepts pointer specs as well as values. A nil pointer becomes a
// nil spec.
func derefSpec(spec ChildSpec) ChildSpec {
	switch sp := spec.(type) {
	case *DeckSpec:
		if sp != nil {
			return *sp
		}
	case *CardSpec:
		if sp != nil {
			return *sp
		}
	case *AnswerSpec:
		if sp != nil {
			return *sp
		}
	case *CommentSpec:
		if sp != nil {
			return *sp
		}
	case *ReplySpec:
		if sp != nil {
			return *sp
		}
	default:
		return spec
	}
	return nil
}

func validateSpec(ownerID uuid.UUID, spec ChildSpec, rules *textrule.Rules) error {
	var errs []domain.FieldError
	if ownerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if spec == nil {
		errs = append(errs, domain.FieldError{Field: "spec", Message: "required"})
	} else {
		errs = append(errs, spec.validate(rules)...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
