package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// HandleAttachment consumes a message carrying attachments. It is honored
// only while the session awaits an upload and the message arrived on the
// session's own channel; everything else is a silent no-op, so a stray image
// can never trigger admission side effects. The first attachment of the
// first qualifying message wins; the member then moves to Completed, the
// admission record is published, their role is reconciled, and the session
// is removed.
func (s *Service) HandleAttachment(ctx context.Context, input AttachmentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if len(input.AttachmentURLs) == 0 {
		return nil
	}

	sess, err := s.sessions.Get(ctx, input.MemberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Already completed or never started; plain messages with images
			// are not an error.
			return nil
		}
		return fmt.Errorf("load session: %w", err)
	}
	if !sess.AwaitingUpload || sess.ChannelID != input.ChannelID {
		return nil
	}

	photoURL := input.AttachmentURLs[0]

	updated, err := s.sessions.Update(ctx, input.MemberID, func(sess *domain.Session) error {
		if sess.Stage != domain.StageAwaitingPhoto || !sess.AwaitingUpload {
			return fmt.Errorf("stage is %s: %w", sess.Stage, domain.ErrConflict)
		}
		sess.Stage = domain.StageCompleted
		sess.AwaitingUpload = false
		sess.Fields["photo_url"] = photoURL
		return nil
	})
	if err != nil {
		// Lost the race against another qualifying message; that message's
		// handler owns the completion side effects.
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("complete session: %w", err)
	}

	s.sendMember(ctx, updated.ChannelID, msgCompleted)

	admission := domain.AdmissionRecord{
		MemberID: updated.MemberID,
		Roll:     updated.Fields["roll"],
		Fields:   updated.Fields,
		PhotoURL: photoURL,
	}
	if err := s.notify.PublishAdmission(ctx, admission); err != nil {
		s.log.ErrorContext(ctx, "admission publish failed",
			slog.String("member_id", updated.MemberID),
			slog.String("error", err.Error()),
		)
		s.sendOperator(ctx, fmt.Sprintf("Admission record for %s could not be published: %v", updated.MemberID, err))
	}

	// Role reconciliation is idempotent and best-effort.
	if role := domain.RoleForStatus(updated.Fields["status"]); role != domain.RoleNone {
		if err := s.community.AssignRole(ctx, updated.MemberID, role); err != nil {
			s.log.WarnContext(ctx, "role assignment failed",
				slog.String("member_id", updated.MemberID),
				slog.String("role", role.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.sessions.Delete(ctx, input.MemberID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("remove session: %w", err)
	}

	if err := s.community.CloseChannel(ctx, updated.ChannelID); err != nil {
		s.log.WarnContext(ctx, "channel teardown failed",
			slog.String("channel_id", updated.ChannelID),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "onboarding completed",
		slog.String("member_id", updated.MemberID),
		slog.String("roll", admission.Roll),
	)
	return nil
}
