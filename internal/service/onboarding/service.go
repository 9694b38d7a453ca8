// Package onboarding drives a member's session through the admission flow:
// first contact, email collection, invitation, external approval, photo
// upload, and final admission.
package onboarding

import (
	"context"
	"log/slog"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

type sessionRepo interface {
	Create(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, memberID string) (*domain.Session, error)
	Update(ctx context.Context, memberID string, mutate func(*domain.Session) error) (*domain.Session, error)
	Delete(ctx context.Context, memberID string) error
}

type correlationRepo interface {
	Link(ctx context.Context, c domain.Correlation) error
	ByEmail(ctx context.Context, email string) (*domain.Correlation, error)
	ByMember(ctx context.Context, memberID string) (*domain.Correlation, error)
}

//go:generate moq -rm -out workflow_client_mock_test.go . workflowClient
type workflowClient interface {
	SubmitInvitation(ctx context.Context, email string) (*domain.Invitation, error)
	SubmitDecision(ctx context.Context, roll string, decision domain.Decision) (*domain.MemberRecord, error)
	ListApproved(ctx context.Context) ([]domain.MemberRecord, error)
}

//go:generate moq -rm -out notifier_mock_test.go . notifier
type notifier interface {
	SendMember(ctx context.Context, channelID, message string) error
	SendOperator(ctx context.Context, message string) error
	PublishAdmission(ctx context.Context, rec domain.AdmissionRecord) error
}

//go:generate moq -rm -out community_mock_test.go . community
type community interface {
	IsOperator(ctx context.Context, memberID string) (bool, error)
	AssignRole(ctx context.Context, memberID string, role domain.RoleCategory) error
	RemoveMember(ctx context.Context, memberID, reason string) error
	CloseChannel(ctx context.Context, channelID string) error
}

//go:generate moq -rm -out action_tokens_mock_test.go . actionTokens
type actionTokens interface {
	Validate(token string) (roll, email string, err error)
}

// Service is the onboarding state machine.
type Service struct {
	sessions     sessionRepo
	correlations correlationRepo
	desk         workflowClient
	notify       notifier
	community    community
	tokens       actionTokens
	log          *slog.Logger
}

// NewService creates a new onboarding service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	correlations correlationRepo,
	desk workflowClient,
	notify notifier,
	community community,
	tokens actionTokens,
) *Service {
	return &Service{
		sessions:     sessions,
		correlations: correlations,
		desk:         desk,
		notify:       notify,
		community:    community,
		tokens:       tokens,
		log:          log.With("service", "onboarding"),
	}
}

// sendMember delivers a member-directed message, logging delivery failures
// instead of propagating them.
func (s *Service) sendMember(ctx context.Context, channelID, message string) {
	if err := s.notify.SendMember(ctx, channelID, message); err != nil {
		s.log.WarnContext(ctx, "member notification failed",
			slog.String("channel_id", channelID),
			slog.String("error", err.Error()),
		)
	}
}

// sendOperator delivers an operator-directed report, logging delivery
// failures instead of propagating them.
func (s *Service) sendOperator(ctx context.Context, message string) {
	if err := s.notify.SendOperator(ctx, message); err != nil {
		s.log.WarnContext(ctx, "operator notification failed",
			slog.String("error", err.Error()),
		)
	}
}
