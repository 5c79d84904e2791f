// Package textrule holds the legality rules for user-supplied names and tag
// lists. The rules are expressed as validator tags and evaluated with
// go-playground/validator.
package textrule

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Elephant-Learning/Elephant-Backend/internal/config"
	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// Rules validates names and tags against the configured limits.
// It is safe for concurrent use.
type Rules struct {
	v        *validator.Validate
	nameTag  string
	tagsTag  string
	maxTags  int
	maxTagID int
}

// New builds Rules from the process tunables.
func New(t config.Tunables) *Rules {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("printable", isPrintable); err != nil {
		panic(fmt.Sprintf("textrule: register printable: %v", err))
	}

	return &Rules{
		v:        v,
		nameTag:  fmt.Sprintf("required,max=%d,printable", t.NameMaxLength),
		tagsTag:  fmt.Sprintf("max=%d,unique,dive,min=0,max=%d", t.MaxTags, t.MaxTagID),
		maxTags:  t.MaxTags,
		maxTagID: t.MaxTagID,
	}
}

// IsInvalidName reports whether text is unusable as a deck name or answer
// title: blank, too long, or containing control characters.
func (r *Rules) IsInvalidName(text string) bool {
	return r.v.Var(strings.TrimSpace(text), r.nameTag) != nil
}

// CheckName returns a ValidationError for field when text is not a legal name.
func (r *Rules) CheckName(field, text string) error {
	if r.IsInvalidName(text) {
		return domain.NewValidationError(field, "invalid name")
	}
	return nil
}

// CheckTags returns a ValidationError for field when tags has too many
// entries, duplicates, or ids outside [0, max_tag_id].
func (r *Rules) CheckTags(field string, tags []int) error {
	if msg := r.TagsProblem(tags); msg != "" {
		return domain.NewValidationError(field, msg)
	}
	return nil
}

// TagsProblem describes the first rule tags violates, or returns "" when
// the list is legal.
func (r *Rules) TagsProblem(tags []int) string {
	err := r.v.Var(tags, r.tagsTag)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid tags"
	}
	switch verrs[0].Tag() {
	case "unique":
		return "duplicate tag"
	case "max":
		if verrs[0].Kind().String() == "slice" {
			return fmt.Sprintf("max %d tags", r.maxTags)
		}
		return fmt.Sprintf("tag id must be <= %d", r.maxTagID)
	case "min":
		return "tag id must be >= 0"
	}
	return "invalid tags"
}

func isPrintable(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
