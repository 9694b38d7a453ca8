// Package chapterdesk is the typed HTTP client for the ChapterDesk
// membership workflow API. It never mutates local state; callers decide what
// to do with success or failure.
package chapterdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

const (
	invitesPath = "/invites/"
	pendingPath = "/pending/"
	membersPath = "/members/"
)

// Client talks to one ChapterDesk instance.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for the given base URL and shared secret.
func New(baseURL, secret string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "chapterdesk"),
	}
}

// APIError is a failed ChapterDesk operation. Status is zero for transport
// faults; Body carries the raw response for operator display when available.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("chapterdesk: %s: status %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("chapterdesk: %s: %s", e.Op, e.Body)
}

// SubmitInvitation submits an invitation for the given email. The email is
// re-checked against the strict shape first; an invalid shape skips the
// network call entirely and returns (nil, nil).
func (c *Client) SubmitInvitation(ctx context.Context, email string) (*domain.Invitation, error) {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		c.log.WarnContext(ctx, "invitation skipped for malformed email", slog.String("email", email))
		return nil, nil
	}

	status, body, err := c.do(ctx, http.MethodPost, invitesPath, map[string]string{
		"email":  normalized,
		"secret": c.secret,
	}, nil)
	if err != nil {
		return nil, &APIError{Op: "submit invitation", Body: err.Error()}
	}
	if status < 200 || status > 299 {
		return nil, &APIError{Op: "submit invitation", Status: status, Body: string(body)}
	}

	var inv apiInvitation
	if err := json.Unmarshal(body, &inv); err != nil {
		return nil, &APIError{Op: "submit invitation: decode", Status: status, Body: string(body)}
	}

	c.log.InfoContext(ctx, "invitation submitted",
		slog.String("email", normalized),
		slog.String("invitation_id", string(inv.ID)),
	)
	return mapInvitation(inv), nil
}

// ListPending fetches the awaiting-approval queue. The payload is decoded
// tolerantly; see decodePending for the accepted shapes.
func (c *Client) ListPending(ctx context.Context) (domain.PendingSet, error) {
	query := url.Values{}
	if c.secret != "" {
		query.Set("secret", c.secret)
	}

	status, body, err := c.do(ctx, http.MethodGet, pendingPath, nil, query)
	if err != nil {
		return domain.PendingSet{}, &APIError{Op: "list pending", Body: err.Error()}
	}
	if status < 200 || status > 299 {
		return domain.PendingSet{}, &APIError{Op: "list pending", Status: status, Body: string(body)}
	}

	set, err := decodePending(body)
	if err != nil {
		return domain.PendingSet{}, &APIError{Op: "list pending: decode", Status: status, Body: string(body)}
	}

	c.log.DebugContext(ctx, "pending list fetched",
		slog.Int("count", set.Count),
		slog.Bool("has_detail", set.HasDetail),
	)
	return set, nil
}

// SubmitDecision patches the approval state of one application. Any 2xx
// status is success. Exactly one retry is performed, and only when the
// first attempt failed with a content-length mismatch on the connection;
// every other fault propagates immediately.
//
// When ChapterDesk echoes the approved record in the response body it is
// returned; otherwise the record is nil and the caller resolves it through
// ListApproved.
func (c *Client) SubmitDecision(ctx context.Context, roll string, decision domain.Decision) (*domain.MemberRecord, error) {
	path := pendingPath + url.PathEscape(roll) + "/"
	payload := map[string]string{
		"action": decision.String(),
		"secret": c.secret,
	}

	status, body, err := c.do(ctx, http.MethodPatch, path, payload, nil)
	if err != nil && isLengthMismatch(err) && ctx.Err() == nil {
		c.log.WarnContext(ctx, "decision retry after length mismatch",
			slog.String("roll", roll),
			slog.String("error", err.Error()),
		)
		status, body, err = c.do(ctx, http.MethodPatch, path, payload, nil)
	}
	if err != nil {
		return nil, &APIError{Op: "submit decision", Body: err.Error()}
	}
	if status < 200 || status > 299 {
		return nil, &APIError{Op: "submit decision", Status: status, Body: string(body)}
	}

	c.log.InfoContext(ctx, "decision submitted",
		slog.String("roll", roll),
		slog.String("decision", decision.String()),
	)

	// The echoed record is optional; a body that does not decode is fine.
	var rec apiMemberRecord
	if err := json.Unmarshal(body, &rec); err == nil && rec.Roll != "" {
		mapped := mapMemberRecord(rec)
		return &mapped, nil
	}
	return nil, nil
}

// ListApproved fetches all approved member records.
func (c *Client) ListApproved(ctx context.Context) ([]domain.MemberRecord, error) {
	query := url.Values{}
	if c.secret != "" {
		query.Set("secret", c.secret)
	}

	status, body, err := c.do(ctx, http.MethodGet, membersPath, nil, query)
	if err != nil {
		return nil, &APIError{Op: "list approved", Body: err.Error()}
	}
	if status < 200 || status > 299 {
		return nil, &APIError{Op: "list approved", Status: status, Body: string(body)}
	}

	var records []apiMemberRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &APIError{Op: "list approved: decode", Status: status, Body: string(body)}
	}

	mapped := make([]domain.MemberRecord, 0, len(records))
	for _, rec := range records {
		mapped = append(mapped, mapMemberRecord(rec))
	}

	c.log.DebugContext(ctx, "approved list fetched", slog.Int("count", len(mapped)))
	return mapped, nil
}

// do executes one round trip and reads the full response body.
func (c *Client) do(ctx context.Context, method, path string, payload any, query url.Values) (int, []byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// isLengthMismatch reports whether err is the one transport fault class the
// client retries: the connection closing with fewer bytes than the declared
// Content-Length.
func isLengthMismatch(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return strings.Contains(err.Error(), "ContentLength")
}
