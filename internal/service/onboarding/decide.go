package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// Decide applies an operator's approve/reject verdict to a pending
// application. The external patch is submitted first; local state only
// changes after it succeeds, so a failed call leaves the session exactly
// where it was.
func (s *Service) Decide(ctx context.Context, input DecideInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	isOp, err := s.community.IsOperator(ctx, input.OperatorID)
	if err != nil {
		return fmt.Errorf("check operator capability: %w", err)
	}
	if !isOp {
		return fmt.Errorf("decision by %s: %w", input.OperatorID, domain.ErrForbidden)
	}

	roll, email, err := s.tokens.Validate(input.ActionToken)
	if err != nil {
		return domain.NewValidationError("action_token", "invalid or expired")
	}

	rec, err := s.desk.SubmitDecision(ctx, roll, input.Decision)
	if err != nil {
		return fmt.Errorf("submit decision for %s: %w", roll, err)
	}

	s.log.InfoContext(ctx, "decision applied",
		slog.String("operator_id", input.OperatorID),
		slog.String("roll", roll),
		slog.String("decision", input.Decision.String()),
	)

	switch input.Decision {
	case domain.DecisionReject:
		return s.finishReject(ctx, roll, email)
	default:
		return s.finishApprove(ctx, roll, email, rec)
	}
}

// finishReject runs the local side effects of a successful external reject:
// the linked member (when one exists) is notified, removed from the
// community, and their session is torn down.
func (s *Service) finishReject(ctx context.Context, roll, email string) error {
	corr, err := s.correlations.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Application never linked to a local member; nothing to tear down.
			s.log.InfoContext(ctx, "rejected application has no linked member",
				slog.String("roll", roll),
			)
			return nil
		}
		return fmt.Errorf("resolve correlation: %w", err)
	}

	_, err = s.sessions.Update(ctx, corr.MemberID, func(sess *domain.Session) error {
		if sess.Stage.IsTerminal() {
			return fmt.Errorf("stage is %s: %w", sess.Stage, domain.ErrConflict)
		}
		sess.Stage = domain.StageRejected
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("mark session rejected: %w", err)
	}

	s.sendMember(ctx, corr.ChannelID, msgRejected)

	if err := s.community.RemoveMember(ctx, corr.MemberID, "application rejected"); err != nil {
		s.log.WarnContext(ctx, "member removal failed",
			slog.String("member_id", corr.MemberID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.community.CloseChannel(ctx, corr.ChannelID); err != nil {
		s.log.WarnContext(ctx, "channel teardown failed",
			slog.String("channel_id", corr.ChannelID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.sessions.Delete(ctx, corr.MemberID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("remove session: %w", err)
	}

	return nil
}

// finishApprove resolves the authoritative member record and asks the linked
// member for their directory photo. echoed is the record ChapterDesk
// returned with the patch, when it did.
func (s *Service) finishApprove(ctx context.Context, roll, email string, echoed *domain.MemberRecord) error {
	rec := echoed
	if rec == nil {
		records, err := s.desk.ListApproved(ctx)
		if err != nil {
			return fmt.Errorf("list approved: %w", err)
		}
		for i := range records {
			if records[i].Roll == roll {
				rec = &records[i]
				break
			}
		}
		if rec == nil {
			// The approval went through but the record cannot be resolved by
			// key. Guessing (e.g. newest record) risks admitting the wrong
			// person, so the operator has to sort it out.
			return fmt.Errorf("approved record %s not in member list: %w", roll, domain.ErrAmbiguousMatch)
		}
	}

	corr, err := s.correlations.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("approved application %s has no linked member: %w", roll, domain.ErrNotFound)
		}
		return fmt.Errorf("resolve correlation: %w", err)
	}

	_, err = s.sessions.Update(ctx, corr.MemberID, func(sess *domain.Session) error {
		if sess.Stage != domain.StagePendingApproval {
			return fmt.Errorf("stage is %s: %w", sess.Stage, domain.ErrConflict)
		}
		sess.Stage = domain.StageAwaitingPhoto
		sess.AwaitingUpload = true
		mergeProfileFields(sess.Fields, rec)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSessionExpired
		}
		return fmt.Errorf("advance to photo stage: %w", err)
	}

	s.log.InfoContext(ctx, "member approved, awaiting photo",
		slog.String("member_id", corr.MemberID),
		slog.String("roll", roll),
	)

	s.sendMember(ctx, corr.ChannelID, msgAskPhoto)
	return nil
}

// mergeProfileFields copies the approved profile into the session's
// collected fields. Existing keys are kept; the approval stage only adds
// the fields it owns.
func mergeProfileFields(fields map[string]string, rec *domain.MemberRecord) {
	set := func(key, value string) {
		if value == "" {
			return
		}
		if _, ok := fields[key]; !ok {
			fields[key] = value
		}
	}
	set("roll", rec.Roll)
	set("first_name", rec.FirstName)
	set("last_name", rec.LastName)
	set("status", rec.Status)
	set("family_line", rec.FamilyLine)
	set("majors", strings.Join(rec.Majors, ", "))
	set("hometown", rec.Hometown)
	set("on_council", strconv.FormatBool(rec.OnCouncil))
}
