package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greekrow/chaptergate-backend/internal/domain"
	"github.com/greekrow/chaptergate-backend/internal/service/onboarding"
	"github.com/greekrow/chaptergate-backend/pkg/ctxutil"
)

//go:generate moq -rm -out onboarding_service_mock_test.go . onboardingService
type onboardingService interface {
	HandleJoin(ctx context.Context, input onboarding.JoinInput) (*domain.Session, error)
	Start(ctx context.Context, input onboarding.StartInput) error
	SubmitEmail(ctx context.Context, input onboarding.EmailInput) error
	Decide(ctx context.Context, input onboarding.DecideInput) error
	HandleAttachment(ctx context.Context, input onboarding.AttachmentInput) error
}

//go:generate moq -rm -out replier_mock_test.go . replier
type replier interface {
	SendMember(ctx context.Context, channelID, message string) error
	SendOperator(ctx context.Context, message string) error
}

// Dispatcher routes inbound events to the onboarding service and turns
// handler errors into replies. Actor mistakes (bad input, wrong stage, no
// permission) go back to the actor's channel; everything else goes to
// operators. Handlers never propagate errors to the adapter.
type Dispatcher struct {
	svc   onboardingService
	reply replier
	log   *slog.Logger
}

// NewDispatcher creates a dispatcher over the onboarding service.
func NewDispatcher(log *slog.Logger, svc onboardingService, reply replier) *Dispatcher {
	return &Dispatcher{
		svc:   svc,
		reply: reply,
		log:   log.With("transport", "events"),
	}
}

// OnJoin handles a member's arrival.
func (d *Dispatcher) OnJoin(ctx context.Context, ev Join) {
	ctx = d.tag(ctx)
	_, err := d.svc.HandleJoin(ctx, onboarding.JoinInput{
		MemberID:  ev.MemberID,
		ChannelID: ev.ChannelID,
	})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		// A re-join with a live session is ordinary churn, not an incident.
		d.report(ctx, ev.ChannelID, err)
	}
}

// OnStart handles a press of the start prompt.
func (d *Dispatcher) OnStart(ctx context.Context, ev StartRequest) {
	ctx = d.tag(ctx)
	err := d.svc.Start(ctx, onboarding.StartInput{
		MemberID:    ev.MemberID,
		RequesterID: ev.RequesterID,
	})
	if err != nil {
		d.report(ctx, ev.ChannelID, err)
	}
}

// OnEmail handles a reply to the email prompt.
func (d *Dispatcher) OnEmail(ctx context.Context, ev EmailSubmitted) {
	ctx = d.tag(ctx)
	err := d.svc.SubmitEmail(ctx, onboarding.EmailInput{
		MemberID:    ev.MemberID,
		RequesterID: ev.RequesterID,
		Email:       ev.Email,
	})
	if err != nil {
		d.report(ctx, ev.ChannelID, err)
	}
}

// OnDecision handles an operator acting on a review notification.
func (d *Dispatcher) OnDecision(ctx context.Context, ev DecisionSubmitted) {
	ctx = d.tag(ctx)
	err := d.svc.Decide(ctx, onboarding.DecideInput{
		OperatorID:  ev.OperatorID,
		ActionToken: ev.ActionToken,
		Decision:    ev.Decision,
	})
	if err != nil {
		d.report(ctx, ev.ChannelID, err)
	}
}

// OnAttachment handles a message carrying attachments.
func (d *Dispatcher) OnAttachment(ctx context.Context, ev AttachmentReceived) {
	ctx = d.tag(ctx)
	err := d.svc.HandleAttachment(ctx, onboarding.AttachmentInput{
		MemberID:       ev.MemberID,
		ChannelID:      ev.ChannelID,
		AttachmentURLs: ev.AttachmentURLs,
	})
	if err != nil {
		d.report(ctx, ev.ChannelID, err)
	}
}

func (d *Dispatcher) tag(ctx context.Context) context.Context {
	return ctxutil.WithEventID(ctx, uuid.New())
}

// report classifies a handler error and replies on the right channel.
func (d *Dispatcher) report(ctx context.Context, channelID string, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		d.toMember(ctx, channelID, verr.Error())
	case errors.Is(err, domain.ErrForbidden):
		d.toMember(ctx, channelID, "That action isn't yours to take.")
	case errors.Is(err, domain.ErrSessionExpired):
		d.toMember(ctx, channelID, "Your onboarding session has expired. Leave and re-join the server to start over.")
	case errors.Is(err, domain.ErrConflict):
		d.toMember(ctx, channelID, "That step was already handled. Check the latest prompt in this channel.")
	default:
		d.log.ErrorContext(ctx, "handler failed", slog.String("error", err.Error()))
		if sendErr := d.reply.SendOperator(ctx, fmt.Sprintf("Onboarding handler failed: %v", err)); sendErr != nil {
			d.log.WarnContext(ctx, "operator reply failed", slog.String("error", sendErr.Error()))
		}
	}
}

func (d *Dispatcher) toMember(ctx context.Context, channelID, message string) {
	if channelID == "" {
		return
	}
	if err := d.reply.SendMember(ctx, channelID, message); err != nil {
		d.log.WarnContext(ctx, "member reply failed",
			slog.String("channel_id", channelID),
			slog.String("error", err.Error()),
		)
	}
}
