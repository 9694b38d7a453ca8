package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// Start moves the member from AwaitingStart to AwaitingEmail and asks for
// their email. Only the member the start prompt was addressed to may trigger
// it; anyone else gets domain.ErrForbidden and no state change.
func (s *Service) Start(ctx context.Context, input StartInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if input.RequesterID != input.MemberID {
		return fmt.Errorf("start pressed by %s on %s's prompt: %w",
			input.RequesterID, input.MemberID, domain.ErrForbidden)
	}

	sess, err := s.sessions.Update(ctx, input.MemberID, func(sess *domain.Session) error {
		if sess.Stage != domain.StageAwaitingStart {
			return fmt.Errorf("stage is %s: %w", sess.Stage, domain.ErrConflict)
		}
		sess.Stage = domain.StageAwaitingEmail
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSessionExpired
		}
		return fmt.Errorf("advance to email stage: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding started", slog.String("member_id", input.MemberID))

	s.sendMember(ctx, sess.ChannelID, msgAskEmail)
	return nil
}
