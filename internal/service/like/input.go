package like

import (
	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// SetLikedInput holds the parameters for SetLiked.
type SetLikedInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
	Kind     domain.Kind
	Liked    bool
}

// Validate checks all fields and collects all errors.
func (i SetLikedInput) Validate() error {
	var errs []domain.FieldError

	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if !i.Kind.Likeable() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "not likeable"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LikeResult is the state of the relation after SetLiked.
type LikeResult struct {
	// Count is the number of distinct users who like the target.
	Count int
	// Changed is false when the call repeated the current state.
	Changed bool
}
