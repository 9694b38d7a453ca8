package onboarding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// HandleJoin creates a fresh session for a member on first contact and sends
// the welcome prompt to their channel. Returns domain.ErrAlreadyExists when
// a live session for the member already exists; the existing session is
// never replaced or merged silently.
func (s *Service) HandleJoin(ctx context.Context, input JoinInput) (*domain.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess := &domain.Session{
		MemberID:  input.MemberID,
		ChannelID: input.ChannelID,
		Stage:     domain.StageAwaitingStart,
		Fields:    map[string]string{},
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "member joined",
		slog.String("member_id", input.MemberID),
		slog.String("channel_id", input.ChannelID),
	)

	s.sendMember(ctx, input.ChannelID, msgWelcome)

	created, err := s.sessions.Get(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("reload session: %w", err)
	}
	return created, nil
}
