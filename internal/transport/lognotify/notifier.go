// Package lognotify is the default delivery backend: every outbound message
// and community action is written to the structured log instead of a chat
// platform. It keeps the binary runnable and observable before a real chat
// adapter is plugged in; swap it out by satisfying the same interfaces.
package lognotify

import (
	"context"
	"log/slog"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// Notifier logs member guidance, operator reports, review notifications and
// admission records.
type Notifier struct {
	log *slog.Logger
}

// NewNotifier creates a log-backed notifier.
func NewNotifier(log *slog.Logger) *Notifier {
	return &Notifier{log: log.With("transport", "lognotify")}
}

func (n *Notifier) SendMember(ctx context.Context, channelID, message string) error {
	n.log.InfoContext(ctx, "member message",
		slog.String("channel_id", channelID),
		slog.String("message", message),
	)
	return nil
}

func (n *Notifier) SendOperator(ctx context.Context, message string) error {
	n.log.InfoContext(ctx, "operator message", slog.String("message", message))
	return nil
}

// SendReviewItem logs one pending application together with its action
// token. A chat adapter would render this as a card with approve/reject
// buttons carrying the token.
func (n *Notifier) SendReviewItem(ctx context.Context, app domain.Application, token string) error {
	n.log.InfoContext(ctx, "review item",
		slog.String("roll", app.Roll),
		slog.String("name", app.FullName()),
		slog.String("email", app.Email),
		slog.String("status", app.Status),
		slog.Time("submitted_at", app.SubmittedAt),
		slog.String("action_token", token),
	)
	return nil
}

func (n *Notifier) PublishAdmission(ctx context.Context, rec domain.AdmissionRecord) error {
	n.log.InfoContext(ctx, "admission record",
		slog.String("member_id", rec.MemberID),
		slog.String("roll", rec.Roll),
		slog.String("photo_url", rec.PhotoURL),
		slog.Any("fields", rec.Fields),
	)
	return nil
}

// Community is the log-backed community adapter. Operator membership comes
// from configuration; role and channel actions are recorded but have no
// external effect until a chat adapter replaces this.
type Community struct {
	operators map[string]struct{}
	log       *slog.Logger
}

// NewCommunity creates a community adapter with the given operator IDs.
func NewCommunity(log *slog.Logger, operatorIDs []string) *Community {
	ops := make(map[string]struct{}, len(operatorIDs))
	for _, id := range operatorIDs {
		ops[id] = struct{}{}
	}
	return &Community{
		operators: ops,
		log:       log.With("transport", "lognotify"),
	}
}

func (c *Community) IsOperator(_ context.Context, memberID string) (bool, error) {
	_, ok := c.operators[memberID]
	return ok, nil
}

func (c *Community) AssignRole(ctx context.Context, memberID string, role domain.RoleCategory) error {
	c.log.InfoContext(ctx, "role assigned",
		slog.String("member_id", memberID),
		slog.String("role", role.String()),
	)
	return nil
}

func (c *Community) RemoveMember(ctx context.Context, memberID, reason string) error {
	c.log.InfoContext(ctx, "member removed",
		slog.String("member_id", memberID),
		slog.String("reason", reason),
	)
	return nil
}

func (c *Community) CloseChannel(ctx context.Context, channelID string) error {
	c.log.InfoContext(ctx, "channel closed", slog.String("channel_id", channelID))
	return nil
}
