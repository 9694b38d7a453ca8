package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// SubmitEmail validates and records the member's contact email, links the
// correlation, submits the ChapterDesk invitation, and moves the session to
// PendingApproval. An invitation failure is reported to operators but does
// not block progress: the admission gate is the approval step, not invite
// delivery.
func (s *Service) SubmitEmail(ctx context.Context, input EmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if input.RequesterID != input.MemberID {
		return fmt.Errorf("email submitted by %s on %s's prompt: %w",
			input.RequesterID, input.MemberID, domain.ErrForbidden)
	}

	email, err := domain.NormalizeEmail(input.Email)
	if err != nil {
		// Malformed email: the member is asked to resubmit, stage unchanged.
		return err
	}

	sess, err := s.sessions.Update(ctx, input.MemberID, func(sess *domain.Session) error {
		if sess.Stage != domain.StageAwaitingEmail {
			return fmt.Errorf("stage is %s: %w", sess.Stage, domain.ErrConflict)
		}
		sess.Stage = domain.StageInviteSubmitted
		sess.Fields["email"] = email
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSessionExpired
		}
		return fmt.Errorf("record email: %w", err)
	}

	if err := s.correlations.Link(ctx, domain.Correlation{
		Email:     email,
		MemberID:  input.MemberID,
		ChannelID: sess.ChannelID,
	}); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.rollbackToEmailStage(ctx, input.MemberID)
			return domain.NewValidationError("email", "already used by another member, submit a different one")
		}
		return fmt.Errorf("link correlation: %w", err)
	}

	// External call; other events may interleave while it is outstanding.
	inv, invErr := s.desk.SubmitInvitation(ctx, email)
	switch {
	case invErr != nil:
		s.log.ErrorContext(ctx, "invitation failed",
			slog.String("member_id", input.MemberID),
			slog.String("error", invErr.Error()),
		)
		s.sendOperator(ctx, fmt.Sprintf("Invitation for %s failed: %v", email, invErr))
	case inv != nil:
		s.sendOperator(ctx, fmt.Sprintf(
			"Invitation created: id=%s email=%s status=%s created=%s updated=%s",
			inv.ID, inv.EmailAddress, inv.Status, inv.CreatedAt, inv.UpdatedAt,
		))
	}

	// The stage guide goes out regardless of the invitation outcome.
	s.sendMember(ctx, sess.ChannelID, msgEmailAccepted)

	// Re-validate the stage before the final write: the session may have
	// moved while the invitation call was outstanding.
	_, err = s.sessions.Update(ctx, input.MemberID, func(sess *domain.Session) error {
		if sess.Stage != domain.StageInviteSubmitted {
			return fmt.Errorf("stage is %s: %w", sess.Stage, domain.ErrConflict)
		}
		sess.Stage = domain.StagePendingApproval
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSessionExpired
		}
		return fmt.Errorf("advance to pending approval: %w", err)
	}

	s.log.InfoContext(ctx, "email recorded, awaiting approval",
		slog.String("member_id", input.MemberID),
		slog.String("email", email),
	)
	return nil
}

// rollbackToEmailStage undoes the InviteSubmitted step after a correlation
// conflict so the member can submit a different email.
func (s *Service) rollbackToEmailStage(ctx context.Context, memberID string) {
	_, err := s.sessions.Update(ctx, memberID, func(sess *domain.Session) error {
		if sess.Stage == domain.StageInviteSubmitted {
			sess.Stage = domain.StageAwaitingEmail
			delete(sess.Fields, "email")
		}
		return nil
	})
	if err != nil {
		s.log.WarnContext(ctx, "email stage rollback failed",
			slog.String("member_id", memberID),
			slog.String("error", err.Error()),
		)
	}
}
