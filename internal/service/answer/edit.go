package answer

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Elephant-Learning/Elephant-Backend/internal/domain"
)

// EditTitle replaces the answer's title and bumps its last-updated time.
func (s *Service) EditTitle(ctx context.Context, answerID uuid.UUID, title string) (*domain.Answer, error) {
	if err := s.checkText(answerID, "title", title); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	answer, err := s.touch(ctx, answerID, func(a *domain.Answer) { a.Title = title })
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer title edited", slog.String("answer_id", answerID.String()))
	return answer, nil
}

// EditDescription replaces the answer's description and bumps its
// last-updated time. Descriptions follow the same rules as titles.
func (s *Service) EditDescription(ctx context.Context, answerID uuid.UUID, description string) (*domain.Answer, error) {
	if err := s.checkText(answerID, "description", description); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	answer, err := s.touch(ctx, answerID, func(a *domain.Answer) { a.Description = description })
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer description edited", slog.String("answer_id", answerID.String()))
	return answer, nil
}

// SetAnswered marks the answer as answered.
func (s *Service) SetAnswered(ctx context.Context, answerID uuid.UUID) (*domain.Answer, error) {
	if errs := requireID("answer_id", answerID); errs != nil {
		return nil, domain.NewValidationErrors(errs)
	}

	answer, err := s.touch(ctx, answerID, func(a *domain.Answer) { a.Answered = true })
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer marked answered", slog.String("answer_id", answerID.String()))
	return answer, nil
}

// SetTags replaces the answer's tag list.
func (s *Service) SetTags(ctx context.Context, answerID uuid.UUID, tags []int) (*domain.Answer, error) {
	errs := requireID("answer_id", answerID)
	if msg := s.rules.TagsProblem(tags); msg != "" {
		errs = append(errs, domain.FieldError{Field: "tags", Message: msg})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	tags = slices.Clone(tags)
	answer, err := s.touch(ctx, answerID, func(a *domain.Answer) { a.Tags = tags })
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer tags set",
		slog.String("answer_id", answerID.String()),
		slog.Int("count", len(tags)),
	)
	return answer, nil
}

// EditComment replaces a comment's text.
func (s *Service) EditComment(ctx context.Context, commentID uuid.UUID, description string) (*domain.Comment, error) {
	if errs := requireID("comment_id", commentID); errs != nil {
		return nil, domain.NewValidationErrors(errs)
	}

	comment, err := mutate(ctx, s.tx, s.comments, "comment", commentID, func(c *domain.Comment) {
		c.Description = description
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment edited", slog.String("comment_id", commentID.String()))
	return comment, nil
}

// EditReply replaces a reply's text.
func (s *Service) EditReply(ctx context.Context, replyID uuid.UUID, text string) (*domain.Reply, error) {
	if errs := requireID("reply_id", replyID); errs != nil {
		return nil, domain.NewValidationErrors(errs)
	}

	reply, err := mutate(ctx, s.tx, s.replies, "reply", replyID, func(r *domain.Reply) {
		r.Text = text
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reply edited", slog.String("reply_id", replyID.String()))
	return reply, nil
}

// SetUserTags replaces the tags a user follows.
func (s *Service) SetUserTags(ctx context.Context, userID uuid.UUID, tags []int) (*domain.User, error) {
	errs := requireID("user_id", userID)
	if msg := s.rules.TagsProblem(tags); msg != "" {
		errs = append(errs, domain.FieldError{Field: "tags", Message: msg})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	tags = slices.Clone(tags)
	user, err := mutate(ctx, s.tx, s.users, "user", userID, func(u *domain.User) { u.Tags = tags })
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user tags set",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(tags)),
	)
	return user, nil
}

func (s *Service) checkText(answerID uuid.UUID, field, text string) error {
	errs := requireID("answer_id", answerID)
	if s.rules.IsInvalidName(text) {
		errs = append(errs, domain.FieldError{Field: field, Message: "invalid name"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// touch mutates the answer and bumps its last-updated time.
func (s *Service) touch(ctx context.Context, answerID uuid.UUID, fn func(a *domain.Answer)) (*domain.Answer, error) {
	return mutate(ctx, s.tx, s.answers, "answer", answerID, func(a *domain.Answer) {
		fn(a)
		a.LastUpdated = s.now().UTC()
	})
}
