// Package reconcile watches the ChapterDesk pending-approval queue and
// notifies operators when it changes. Each review notification carries a
// signed action token so the decision can be verified back to the exact
// application it was issued for.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

//go:generate moq -rm -out pending_lister_mock_test.go . pendingLister
type pendingLister interface {
	ListPending(ctx context.Context) (domain.PendingSet, error)
}

//go:generate moq -rm -out review_notifier_mock_test.go . reviewNotifier
type reviewNotifier interface {
	SendOperator(ctx context.Context, message string) error
	SendReviewItem(ctx context.Context, app domain.Application, token string) error
}

//go:generate moq -rm -out token_signer_mock_test.go . tokenSigner
type tokenSigner interface {
	Generate(roll, email string) (string, error)
}

// Poller periodically fetches the pending queue and reports changes.
type Poller struct {
	desk     pendingLister
	notify   reviewNotifier
	tokens   tokenSigner
	interval time.Duration
	log      *slog.Logger

	lastDigest string
}

// NewPoller creates a poller that checks the queue every interval.
func NewPoller(
	log *slog.Logger,
	desk pendingLister,
	notify reviewNotifier,
	tokens tokenSigner,
	interval time.Duration,
) *Poller {
	return &Poller{
		desk:     desk,
		notify:   notify,
		tokens:   tokens,
		interval: interval,
		log:      log.With("service", "reconcile"),
	}
}

// Run ticks until ctx is cancelled. The interval starts counting after a
// tick finishes, so a slow ChapterDesk response delays the next poll instead
// of stacking overlapping ones.
func (p *Poller) Run(ctx context.Context) {
	p.log.InfoContext(ctx, "poller started", slog.Duration("interval", p.interval))

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.InfoContext(ctx, "poller stopped")
			return
		case <-timer.C:
		}

		if err := p.Tick(ctx); err != nil {
			p.log.ErrorContext(ctx, "poll tick failed", slog.String("error", err.Error()))
		}
		timer.Reset(p.interval)
	}
}

// Tick fetches the pending queue once and, when its digest differs from the
// previous observation, sends operators a summary plus one review
// notification per application. An unchanged queue produces nothing.
func (p *Poller) Tick(ctx context.Context) error {
	set, err := p.desk.ListPending(ctx)
	if err != nil {
		// Digest stays as-is; the change fires on the next successful poll.
		return fmt.Errorf("list pending: %w", err)
	}

	digest := fingerprint(set)
	if digest == p.lastDigest {
		return nil
	}

	if !set.HasDetail {
		// Degraded payload: only the queue length is known.
		msg := fmt.Sprintf("Pending review queue changed: %d application(s) awaiting review (no detail available).", set.Count)
		if err := p.notify.SendOperator(ctx, msg); err != nil {
			return fmt.Errorf("send summary: %w", err)
		}
		p.lastDigest = digest
		return nil
	}

	summary := fmt.Sprintf("Pending review queue changed: %d application(s) awaiting review.", len(set.Items))
	if err := p.notify.SendOperator(ctx, summary); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	for _, app := range set.Items {
		token, err := p.tokens.Generate(app.Roll, app.Email)
		if err != nil {
			p.log.ErrorContext(ctx, "action token generation failed",
				slog.String("roll", app.Roll),
				slog.String("error", err.Error()),
			)
			continue
		}
		if err := p.notify.SendReviewItem(ctx, app, token); err != nil {
			p.log.WarnContext(ctx, "review notification failed",
				slog.String("roll", app.Roll),
				slog.String("error", err.Error()),
			)
		}
	}

	p.lastDigest = digest

	p.log.InfoContext(ctx, "pending queue change reported",
		slog.Int("count", len(set.Items)),
	)
	return nil
}
